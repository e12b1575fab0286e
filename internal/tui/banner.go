package tui

func (m Model) renderBanner() string {
	logo := ` ██████╗██╗   ██╗██████╗ ███████╗██╗  ██╗
██╔════╝╚██╗ ██╔╝██╔══██╗██╔════╝╚██╗██╔╝
██║      ╚████╔╝ ██████╔╝█████╗   ╚███╔╝
██║       ╚██╔╝  ██╔══██╗██╔══╝   ██╔██╗
╚██████╗   ██║   ██████╔╝███████╗██╔╝ ██╗
 ╚═════╝   ╚═╝   ╚═════╝ ╚══════╝╚═╝  ╚═╝`

	return m.styles.Title.Render(logo)
}
