package image

import (
	"strings"
	"unicode"

	"constructor-script-editor/pkg/dom"
)

// StretchedTune is the built-in tune; enabling it asks the host to render
// the block at full width.
const StretchedTune = "stretched"

// Tune pairs a toggle name with the effect run when it flips. The picture
// holder additionally gains or loses a class derived from the name.
type Tune struct {
	Name   string
	Effect func(enabled bool)
}

// RegisterTune adds a toggle to the settings panel. Registering an already
// known name replaces its effect.
func (t *Tool) RegisterTune(name string, effect func(enabled bool)) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.tunes {
		if t.tunes[i].Name == name {
			t.tunes[i].Effect = effect
			return
		}
	}
	t.tunes = append(t.tunes, Tune{Name: name, Effect: effect})
}

// ToggleTune flips the named tune on the record, restyles the picture
// holder and runs the tune's effect with the new state.
func (t *Tool) ToggleTune(name string) (bool, error) {
	t.mu.Lock()
	var tune *Tune
	for i := range t.tunes {
		if t.tunes[i].Name == name {
			tune = &t.tunes[i]
			break
		}
	}
	if tune == nil {
		t.mu.Unlock()
		return false, ErrUnknownTune
	}

	if t.record.Tunes == nil {
		t.record.Tunes = make(map[string]bool)
	}
	enabled := !t.record.Tunes[name]
	t.record.Tunes[name] = enabled
	if t.nodes.holder != nil {
		dom.SetClass(t.nodes.holder, kebabCase(name), enabled)
	}
	effect := tune.Effect
	t.mu.Unlock()

	if effect != nil {
		effect(enabled)
	}
	return enabled, nil
}

// applyTuneClassesLocked restyles the picture holder to the current tune
// states; runs after the image attaches.
func (t *Tool) applyTuneClassesLocked() {
	if t.nodes.holder == nil {
		return
	}
	for _, tune := range t.tunes {
		dom.SetClass(t.nodes.holder, kebabCase(tune.Name), t.record.Tunes[tune.Name])
	}
}

// enabledTuneEffectsLocked snapshots the effects of every enabled tune so
// the caller can run them outside the lock.
func (t *Tool) enabledTuneEffectsLocked() []func() {
	var effects []func()
	for _, tune := range t.tunes {
		if tune.Effect == nil || !t.record.Tunes[tune.Name] {
			continue
		}
		run := tune.Effect
		effects = append(effects, func() { run(true) })
	}
	return effects
}

// stretchBlock is the effect behind the built-in stretched tune.
func (t *Tool) stretchBlock(enabled bool) {
	t.SetStretched(t.insertAt, enabled)
}

// kebabCase converts a camelCase tune name to its class form, so
// "withBorder" styles the holder as "with-border".
func kebabCase(name string) string {
	var sb strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
