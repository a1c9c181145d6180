package tui

import "fmt"

type confirmModel struct {
	answered int
	total    int
}

func (m confirmModel) View() string {
	content := fmt.Sprintf("Submit the attempt? %d of %d questions answered.\n\n", m.answered, m.total)
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
