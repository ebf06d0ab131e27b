package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Product photos follow the pattern CODE-N.ext, e.g. FT2011B-1.jpg or LE-002-3.png:
// everything before the last hyphen is the product code, N is the gallery position.
var photoNameRegex = regexp.MustCompile(`(?i)^([A-Z0-9-]+)-(\d+)\.(jpg|jpeg|png|webp)$`)

// ParsePhotoFileName extracts the product code and gallery sequence number
// from a product photo filename.
func ParsePhotoFileName(filename string) (code string, seq int, err error) {
	matches := photoNameRegex.FindStringSubmatch(strings.TrimSpace(filename))
	if len(matches) != 4 {
		return "", 0, fmt.Errorf("invalid photo filename: expected CODE-N.ext, got %q", filename)
	}

	seq, err = strconv.Atoi(matches[2])
	if err != nil || seq < 1 {
		return "", 0, fmt.Errorf("invalid photo sequence in %q", filename)
	}

	return strings.ToUpper(matches[1]), seq, nil
}
