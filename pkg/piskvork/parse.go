package piskvork

import (
	"fmt"
	"strconv"
	"strings"
)

// Payloads keep whatever separators the manager used, so commas are folded
// into whitespace before splitting, matching "x,y" as well as "x y".

func parseInt(payload string) (int, error) {
	var fields = splitArgs(payload)
	if len(fields) < 1 {
		return 0, fmt.Errorf("expected an integer argument")
	}
	return strconv.Atoi(fields[0])
}

func parsePair(payload string) (int, int, error) {
	var fields = splitArgs(payload)
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("expected two integer arguments")
	}
	var x, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func parseTriple(payload string) (int, int, int, error) {
	var fields = splitArgs(payload)
	if len(fields) < 3 {
		return 0, 0, 0, fmt.Errorf("expected three integer arguments")
	}
	var x, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, 0, err
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, 0, err
	}
	player, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, 0, err
	}
	return x, y, player, nil
}

func splitArgs(payload string) []string {
	return strings.Fields(strings.ReplaceAll(payload, ",", " "))
}

// trimTerminator strips the CR/LF tail from a raw payload. A payload
// without any terminator is malformed: the manager always ends commands
// with CR and/or LF, and partial lines must not be acted on.
func trimTerminator(payload string) (string, bool) {
	if payload == "" {
		return "", false
	}
	var last = payload[len(payload)-1]
	if last != '\r' && last != '\n' {
		return "", false
	}
	return strings.TrimRight(payload, "\r\n"), true
}
