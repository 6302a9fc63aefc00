package widgets

import (
	"github.com/intentvault/widgets/internal/registry"
)

// register defines a tag in the default registry. Double registration is a
// silent no-op per the registry contract, so re-importing this package from
// multiple embedding points is safe.
func register(tag string, ctor registry.Constructor) {
	registry.Register(tag, ctor)
}
