// Package preview renders platform-styled text for a terminal.
//
// Input is text as the platform displays it: SectionSign markers for legacy
// colours and formats, and SectionSign-x sequences for hex colours. Markers
// are converted to lipgloss styles; output honours the renderer's colour
// profile, so the same call prints plain text when stdout is not a terminal.
package preview
