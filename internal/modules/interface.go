package modules

import "github.com/go-chi/chi/v5"

// Module defines the interface for application modules.
type Module interface {
	Routes(r chi.Router)
}
