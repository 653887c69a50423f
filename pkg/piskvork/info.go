package piskvork

import "fmt"

type GameType int

const (
	GameTypeHuman GameType = iota
	GameTypeBrain
	GameTypeTournament
	GameTypeNetwork
)

// Info stores the session configuration sent by the manager. Values are
// plain key/value storage mutated only by the INFO command; timeouts are in
// milliseconds, zero meaning unlimited.
type Info struct {
	TimeoutTurn  int
	TimeoutMatch int
	MaxMemory    int
	TimeLeft     int
	GameType     GameType
	Rule         byte
	EvaluateX    int
	EvaluateY    int
	Folder       string
}

func (i *Info) Apply(key, value string) error {
	switch key {
	case "timeout_turn":
		return applyIntKey(value, &i.TimeoutTurn)
	case "timeout_match":
		return applyIntKey(value, &i.TimeoutMatch)
	case "max_memory":
		return applyIntKey(value, &i.MaxMemory)
	case "time_left":
		return applyIntKey(value, &i.TimeLeft)
	case "game_type":
		var v int
		if err := applyIntKey(value, &v); err != nil {
			return err
		}
		if v >= int(GameTypeHuman) && v <= int(GameTypeNetwork) {
			i.GameType = GameType(v)
		}
		return nil
	case "rule":
		var v int
		if err := applyIntKey(value, &v); err != nil {
			return err
		}
		i.Rule = byte(v)
		return nil
	case "evaluate":
		var x, y, err = parsePair(value)
		if err != nil {
			return fmt.Errorf("Error parsing INFO command payload")
		}
		i.EvaluateX = x
		i.EvaluateY = y
		return nil
	case "folder":
		if value == "" {
			return fmt.Errorf("Error parsing INFO command payload")
		}
		i.Folder = value
		return nil
	}
	return fmt.Errorf("Unknown INFO key: %s", key)
}

func applyIntKey(value string, dst *int) error {
	var v, err = parseInt(value)
	if err != nil {
		return fmt.Errorf("Error parsing INFO command payload")
	}
	*dst = v
	return nil
}
