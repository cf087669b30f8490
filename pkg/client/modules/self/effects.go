package self

// EffectInstance represents an active potion effect on the player.
type EffectInstance struct {
	ID        int32
	Amplifier int32
	Duration  int32 // ticks remaining (-1 = infinite)
}

// HasEffect returns whether the player has the given effect active.
func (m *Module) HasEffect(effectID int32) bool {
	_, ok := m.activeEffects[effectID]
	return ok
}

// EffectAmplifier returns the amplifier of the given effect, or -1 if not active.
func (m *Module) EffectAmplifier(effectID int32) int32 {
	e, ok := m.activeEffects[effectID]
	if !ok {
		return -1
	}
	return e.Amplifier
}

// ApplyEffect installs or refreshes an active effect, the direct-mutation
// replacement for the teacher's S2CUpdateMobEffect handler.
func (m *Module) ApplyEffect(effectID, amplifier, duration int32) {
	if m.activeEffects == nil {
		m.activeEffects = map[int32]*EffectInstance{}
	}
	m.activeEffects[effectID] = &EffectInstance{ID: effectID, Amplifier: amplifier, Duration: duration}
}

// RemoveEffect clears an active effect immediately.
func (m *Module) RemoveEffect(effectID int32) {
	delete(m.activeEffects, effectID)
}

// TickEffects decrements durations and removes expired effects. Matches
// vanilla MobEffectInstance.tickClient. Called once per tick by the physics
// module.
func (m *Module) TickEffects() {
	for id, e := range m.activeEffects {
		if e.Duration == -1 {
			continue
		}
		e.Duration--
		if e.Duration <= 0 {
			delete(m.activeEffects, id)
		}
	}
}
