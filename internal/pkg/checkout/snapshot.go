package checkout

import "encoding/json"

// Snapshot is the serialisable form of a Funnel, kept in the visitor session.
type Snapshot struct {
	Step  Step   `json:"step"`
	Draft *Draft `json:"draft,omitempty"`
}

func (f *Funnel) Snapshot() Snapshot {
	var d *Draft
	if f.draft != nil {
		cp := *f.draft
		d = &cp
	}
	return Snapshot{Step: f.router.Step(), Draft: d}
}

// Restore rebuilds a Funnel from a snapshot. A snapshot whose step is unknown,
// or that sits past home without a draft, falls back to home.
func Restore(s Snapshot, opts ...FunnelOption) *Funnel {
	f := NewFunnel(opts...)
	if !s.Step.IsValid() || (s.Step != StepHome && s.Draft == nil) {
		return f
	}
	f.router.step = s.Step
	if s.Step != StepHome {
		cp := *s.Draft
		f.draft = &cp
	}
	return f
}

// MarshalSnapshot encodes the funnel for session storage.
func (f *Funnel) MarshalSnapshot() (string, error) {
	b, err := json.Marshal(f.Snapshot())
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// UnmarshalSnapshot decodes a session value. Empty or corrupt input yields a
// fresh funnel at home.
func UnmarshalSnapshot(raw string, opts ...FunnelOption) *Funnel {
	if raw == "" {
		return NewFunnel(opts...)
	}
	var s Snapshot
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return NewFunnel(opts...)
	}
	return Restore(s, opts...)
}
