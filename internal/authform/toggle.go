package authform

const (
	InputTypePassword = "password"
	InputTypeText     = "text"
)

// PasswordToggle is the state of a password field after its show/hide control was pressed.
type PasswordToggle struct {
	InputType string `json:"inputType"`
	Label     string `json:"label"`
	AriaLabel string `json:"ariaLabel"`
}

// TogglePassword flips a password input between hidden and visible.
// Any type other than "password" counts as visible.
func TogglePassword(currentType string) PasswordToggle {
	if currentType == InputTypePassword {
		return PasswordToggle{
			InputType: InputTypeText,
			Label:     "Hide",
			AriaLabel: "Hide password",
		}
	}
	return PasswordToggle{
		InputType: InputTypePassword,
		Label:     "Show",
		AriaLabel: "Show password",
	}
}
