package skills

import (
	"github.com/okian/apex/internal/domain/model"
)

// Kind discriminates the two sources a visible skill can come from.
type Kind int

const (
	KindPredefined Kind = iota
	KindCustom
)

// Variant is a tagged union of a predefined Skill and an athlete-owned
// CustomSkill. Exactly one of the two payload fields is set, matching Kind.
type Variant struct {
	kind       Kind
	predefined model.Skill
	custom     model.CustomSkill
}

// Predefined wraps a library skill.
func Predefined(s model.Skill) Variant {
	return Variant{kind: KindPredefined, predefined: s}
}

// Custom wraps an athlete-owned skill.
func Custom(c model.CustomSkill) Variant {
	return Variant{kind: KindCustom, custom: c}
}

// Kind returns the variant's tag.
func (v Variant) Kind() Kind { return v.kind }

// ID returns the wrapped skill's id.
func (v Variant) ID() string {
	if v.kind == KindCustom {
		return v.custom.ID
	}
	return v.predefined.ID
}

// Name returns the wrapped skill's display name.
func (v Variant) Name() string {
	if v.kind == KindCustom {
		return v.custom.Name
	}
	return v.predefined.Name
}

// Event returns the wrapped skill's apparatus.
func (v Variant) Event() model.Event {
	if v.kind == KindCustom {
		return v.custom.Event
	}
	return v.predefined.Event
}

// AsPredefined returns the predefined payload; ok is false for custom skills.
func (v Variant) AsPredefined() (model.Skill, bool) {
	return v.predefined, v.kind == KindPredefined
}

// AsCustom returns the custom payload; ok is false for predefined skills.
func (v Variant) AsCustom() (model.CustomSkill, bool) {
	return v.custom, v.kind == KindCustom
}
