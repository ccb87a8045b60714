package statepath

import "fmt"

// StateNotFoundError is returned by FromRootTo when the target state is not
// part of the path. It signals a caller logic error, as opposed to the
// comma-ok "absent value" results of Last and NodeForState.
type StateNotFoundError struct {
	Target string
}

func (e *StateNotFoundError) Error() string {
	return fmt.Sprintf("state '%s' is not part of this path", e.Target)
}
