package registry

import (
	"github.com/intentvault/widgets/internal/runtime"
)

// Constructor builds a fresh widget spec for one mounted instance.
type Constructor func() runtime.Spec
