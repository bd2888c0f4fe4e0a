package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mabruzzo/cholla-scaling/internal/model"
)

// ErrNotFound is returned by Lookup for names absent from the registry.
var ErrNotFound = errors.New("problem not found")

// Registry maps problem names to their profiles for a single application
// instance.
type Registry struct {
	profiles map[string]*model.ProblemProfile
}

// New creates and initializes a new, empty Registry instance.
func New() *Registry {
	return &Registry{
		profiles: make(map[string]*model.ProblemProfile),
	}
}

// Register adds a validated profile to the registry. A name collision is an
// error rather than an override: the registry is a fixed mapping, and a
// silent override would mask a typo in a user's profile file.
func (r *Registry) Register(profile *model.ProblemProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	if _, exists := r.profiles[profile.Name]; exists {
		return fmt.Errorf("problem %q is already registered", profile.Name)
	}
	r.profiles[profile.Name] = profile
	return nil
}

// Lookup returns the profile registered under name, or an error wrapping
// ErrNotFound if the name is absent.
func (r *Registry) Lookup(name string) (*model.ProblemProfile, error) {
	profile, ok := r.profiles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known problems: %v)", ErrNotFound, name, r.Names())
	}
	return profile, nil
}

// Names returns the registered problem names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
