package main

// Widget packages register their tags with the default registry on import.
import (
	_ "github.com/intentvault/widgets/internal/widgets"
)
