package styled

// ClickAction is what happens when the text is clicked.
type ClickAction string

const (
	OpenURL         ClickAction = "open_url"
	OpenFile        ClickAction = "open_file"
	RunCommand      ClickAction = "run_command"
	SuggestCommand  ClickAction = "suggest_command"
	ChangePage      ClickAction = "change_page"
	CopyToClipboard ClickAction = "copy_to_clipboard"
)

var clickActions = map[string]ClickAction{
	string(OpenURL):         OpenURL,
	string(OpenFile):        OpenFile,
	string(RunCommand):      RunCommand,
	string(SuggestCommand):  SuggestCommand,
	string(ChangePage):      ChangePage,
	string(CopyToClipboard): CopyToClipboard,
}

// ClickActionByName resolves a click action from its wire name.
func ClickActionByName(name string) (ClickAction, bool) {
	a, ok := clickActions[name]
	return a, ok
}

// ClickEvent is attached to a Style.
type ClickEvent struct {
	Action ClickAction `json:"action"`
	Value  string      `json:"value"`
}

// HoverAction is what is shown when the text is hovered.
type HoverAction string

const (
	ShowText   HoverAction = "show_text"
	ShowItem   HoverAction = "show_item"
	ShowEntity HoverAction = "show_entity"
)

// HoverEvent is attached to a Style.
// For ShowText the payload is Text, the other actions keep their raw arguments.
type HoverEvent struct {
	Action HoverAction `json:"action"`
	Text   *Component  `json:"text,omitempty"`
	Raw    []string    `json:"raw,omitempty"`
}
