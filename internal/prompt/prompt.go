// Package prompt collects reference coordinates from an interactive user.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const invalidMsg = "Invalid input. Please enter numeric values for latitude and longitude."

// Coordinate is a user-supplied reference position in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// ReadCoordinate asks for latitude and longitude on out and parses the
// answers from in. On malformed numeric entry it prints a user-facing
// message and reports ok=false; no error escapes to the caller.
func ReadCoordinate(in io.Reader, out io.Writer) (Coordinate, bool) {
	reader := bufio.NewReader(in)

	lat, ok := readFloat(reader, out, "Enter latitude: ")
	if !ok {
		return Coordinate{}, false
	}

	lon, ok := readFloat(reader, out, "Enter longitude: ")
	if !ok {
		return Coordinate{}, false
	}

	return Coordinate{Lat: lat, Lon: lon}, true
}

func readFloat(reader *bufio.Reader, out io.Writer, label string) (float64, bool) {
	fmt.Fprint(out, label)

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(out, invalidMsg)
		return 0, false
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		fmt.Fprintln(out, invalidMsg)
		return 0, false
	}

	return v, true
}
