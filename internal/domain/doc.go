// Package domain contains the core domain model for AppLauncher.
//
// The domain is OS- and format-agnostic: it does not depend on the config file syntax,
// os/exec, or the filesystem. Infra/adapters map into/from these types.
package domain
