// Package config defines the format-agnostic scenario model for the
// application, along with the Loader interface implemented by each supported
// configuration format.
//
// The `config.Scenario` is the single source of truth for the `app` package:
// it lists, in order, the pieces to place and the stencils to apply. Concrete
// loaders for HCL and YAML are provided in separate packages.
package config
