package types

type Action string

const (
	AppendValue Action = "Append"
	InsertValue Action = "Insert"
	GetValue    Action = "Get"
	SetValue    Action = "Set"
	PopValue    Action = "Pop"
	RemoveValue Action = "Remove"
	IndexOf     Action = "Index"
	CountValue  Action = "Count"
	ExtendList  Action = "Extend"
	CopyList    Action = "Copy"
	ClearList   Action = "Clear"
	ListLen     Action = "Len"
	ShowList    Action = "Show"
	DropList    Action = "Drop"
)

// Command is one operation on a named list, as carried in a queue message.
type Command struct {
	Action Action `json:"action"`
	List   string `json:"list"`
	// Position is the index for Insert, Get, Set and Pop, and the start for Index.
	// When omitted Pop uses -1 and Index uses 0.
	Position *int   `json:"position,omitempty"`
	Value    string `json:"value,omitempty"`
	// Source names the list read by Extend and Copy.
	Source string `json:"source,omitempty"`
}

func (c *Command) PositionOr(def int) int {
	if c.Position == nil {
		return def
	}
	return *c.Position
}
