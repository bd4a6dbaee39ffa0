// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

func clampToByte(f float64) byte {
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return byte(f)
}

func clamp(f, minimum, maximum float64) float64 {
	if f < minimum {
		return minimum
	}
	if f > maximum {
		return maximum
	}
	return f
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
