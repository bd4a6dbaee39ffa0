// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

const (
	OceanLevel = 63
	SandLevel  = OceanLevel + 10
	GrassLevel = SandLevel + 50
	RockLevel  = GrassLevel + 40
	SnowLevel  = 255
)

// Land reports whether a sample is above sea level.
func Land(h byte) bool {
	return h > OceanLevel
}

// Altitude converts a sample to meters above (or below) sea level.
func Altitude(h byte) float32 {
	return float32(h) - OceanLevel
}
