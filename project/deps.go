package project

import "strings"

// DepMode selects between production and development dependencies.
type DepMode int

const (
	Prod DepMode = iota
	Dev
)

func (m DepMode) String() string {
	if m == Dev {
		return "dev"
	}
	return "prod"
}

// Dependencies accumulates package names in the order generators ask
// for them. A name is kept once per mode. The zero value is ready to use.
type Dependencies struct {
	prod []string
	dev  []string
	seen map[DepMode]map[string]bool
}

// NewDependencies returns an empty store.
func NewDependencies() *Dependencies {
	return &Dependencies{}
}

// Add records names under mode. Each argument may itself be a
// space-separated list ("redux react-redux").
func (d *Dependencies) Add(mode DepMode, names ...string) {
	if d.seen == nil {
		d.seen = make(map[DepMode]map[string]bool)
	}
	if d.seen[mode] == nil {
		d.seen[mode] = make(map[string]bool)
	}
	for _, group := range names {
		for _, name := range strings.Fields(group) {
			if d.seen[mode][name] {
				continue
			}
			d.seen[mode][name] = true
			if mode == Dev {
				d.dev = append(d.dev, name)
			} else {
				d.prod = append(d.prod, name)
			}
		}
	}
}

// List returns a copy of the names recorded under mode.
func (d *Dependencies) List(mode DepMode) []string {
	src := d.prod
	if mode == Dev {
		src = d.dev
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Joined returns the names under mode as a single space-separated string.
func (d *Dependencies) Joined(mode DepMode) string {
	return strings.Join(d.List(mode), " ")
}

// Empty reports whether nothing has been recorded in either mode.
func (d *Dependencies) Empty() bool {
	return len(d.prod) == 0 && len(d.dev) == 0
}
