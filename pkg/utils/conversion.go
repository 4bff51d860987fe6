package utils

import "strconv"

// StringToInt mengubah string angka menjadi int.
// Berguna untuk parsing field numerik dari form multipart (mis. umur).
func StringToInt(str string) int {
	val, err := strconv.Atoi(str)
	if err != nil {
		return 0 // Return 0 jika gagal parsing
	}
	return val
}
