package matter

import "strconv"

// MaxExtruders is the number of material channels a print can use.
const MaxExtruders = 5

// Extruder is a material channel of a multi-material printer. Channels are
// numbered from 1; 0 disables whatever it is assigned to.
type Extruder int

// Enabled reports whether e selects a channel.
func (e Extruder) Enabled() bool { return e > 0 }

// Valid reports whether e is 0 or a channel number.
func (e Extruder) Valid() bool { return e >= 0 && e <= MaxExtruders }

func (e Extruder) String() string {
	if e == 0 {
		return "off"
	}
	return strconv.Itoa(int(e))
}
