package machine

// step advances the rotor stack once, before the signal path of every
// keypress. Only the three rightmost rotors ever turn; the Greek wheel
// of a 4-rotor stack sits outside the triple and is never consulted.
//
// With doublestep enabled, a middle rotor resting at its own notch drags
// the third rotor over and turns itself again: the same condition holds
// on the keypress that brought it onto the notch and on the next one, so
// the middle rotor advances on two consecutive keypresses. This is the
// double-step anomaly of the real stepping gear. Disabling the flag
// yields the simplified turnover model in which the middle rotor turns
// only when the right rotor sits at its notch.
func (m *Machine) step() {
	right := m.rotors[len(m.rotors)-1]
	middle := m.rotors[len(m.rotors)-2]
	third := m.rotors[len(m.rotors)-3]

	switch {
	case m.doublestep && middle.atNotch():
		third.turn()
		middle.turn()
		right.turn()
	case right.atNotch():
		middle.turn()
		right.turn()
	default:
		right.turn()
	}
}
