package view

// SearchFooter renders the footer for the search modal.
func SearchFooter(styles ModalStyles) string {
	return RenderModalButtons(styles, "[Enter] Search", "[Esc] Cancel")
}

// SettingsFooter renders the footer for the settings modal.
func SettingsFooter(styles ModalStyles) string {
	return RenderModalButtons(styles, "[Enter] Apply", "[Esc] Cancel")
}

// DetailFooter renders the footer for the book detail modal.
func DetailFooter(hasImage bool, styles ModalStyles) string {
	if hasImage {
		return RenderModalButtonsCompact(styles, "[Esc] Close", "[y] Copy", "[c] Copy cover URL")
	}
	return RenderModalButtonsCompact(styles, "[Esc] Close", "[y] Copy")
}
