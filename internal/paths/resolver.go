package paths

import (
	"os"
	"runtime"
	"strings"

	"invmerge/internal/config"
	"invmerge/internal/inventory"
)

// Platform is the key into the config path tables. Anything that is not
// Windows uses the darwin table, since the warehouse shares are only mounted
// on the office Windows and Mac machines.
type Platform string

const (
	PlatformWindows Platform = "windows"
	PlatformDarwin  Platform = "darwin"
)

// CurrentPlatform maps the running OS onto a path-table key.
func CurrentPlatform() Platform {
	if runtime.GOOS == "windows" {
		return PlatformWindows
	}
	return PlatformDarwin
}

// CleanHostname returns this machine's hostname with any ".local" suffix
// stripped, as macOS reports it on some networks.
func CleanHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return ""
	}
	return strings.TrimSuffix(hostname, ".local")
}

// Resolver answers path lookups for the current platform and machine. It is a
// pure view over the config tables; construction captures platform and
// hostname once.
type Resolver struct {
	cfg      *config.Config
	platform Platform
	hostname string
}

// NewResolver builds a resolver for the machine the tool is running on.
func NewResolver(cfg *config.Config) *Resolver {
	return NewResolverFor(cfg, CurrentPlatform(), CleanHostname())
}

// NewResolverFor builds a resolver for an explicit platform and hostname.
func NewResolverFor(cfg *config.Config, platform Platform, hostname string) *Resolver {
	return &Resolver{cfg: cfg, platform: platform, hostname: hostname}
}

// BasePath returns the shared folder holding the given warehouse's inventory
// files, or false when the platform/warehouse pair is not in the table.
func (r *Resolver) BasePath(w inventory.Warehouse) (string, bool) {
	byWarehouse, ok := r.cfg.Warehouses[string(r.platform)]
	if !ok {
		return "", false
	}
	dir, ok := byWarehouse[string(w)]
	if !ok || dir == "" {
		return "", false
	}
	return dir, true
}

// OutputDir returns the directory the merged report is written to. On
// platforms with a fixed directory it is returned as is; otherwise the
// machine's hostname must be in the known set.
func (r *Resolver) OutputDir() (string, bool) {
	out, ok := r.cfg.Output[string(r.platform)]
	if !ok {
		return "", false
	}
	if out.Dir != "" {
		return out.Dir, true
	}
	dir, ok := out.Hosts[r.hostname]
	if !ok || dir == "" {
		return "", false
	}
	return dir, true
}
