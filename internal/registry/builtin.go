package registry

import (
	"github.com/mabruzzo/cholla-scaling/internal/model"
)

// builtinProfiles is the definitive list of stock problems compiled into the
// binary. Each uses the default base geometry for its origin policy.
func builtinProfiles() []*model.ProblemProfile {
	newProfile := func(name string, origin model.OriginPolicy, rule model.ScaleRule) *model.ProblemProfile {
		return &model.ProblemProfile{
			Name:   name,
			Origin: origin,
			Rule:   rule,
			Base:   model.DefaultBase(origin),
		}
	}
	return []*model.ProblemProfile{
		newProfile("sound", model.OriginFixedZero, model.GrowXAxis),
		newProfile("slow_magnetosonic", model.OriginFixedZero, model.GrowXAxis),
		newProfile("adiabatic_disk", model.OriginCentered, model.GrowZAxis),
	}
}

// Builtin returns a registry pre-populated with the stock problems. A
// registration failure here is a programmer error, so it panics.
func Builtin() *Registry {
	r := New()
	for _, profile := range builtinProfiles() {
		if err := r.Register(profile); err != nil {
			panic(err)
		}
	}
	return r
}
