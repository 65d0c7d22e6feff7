package title

import "github.com/atotto/clipboard"

// Clipboard is the system clipboard as used for pasting and copying seeds.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard uses the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (SystemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// pasteDigits appends the digits found in text to buf and returns how many
// were kept. Non-digits are skipped and the buffer bound still applies.
func pasteDigits(buf *SeedBuffer, text string) int {
	kept := 0
	for _, r := range text {
		if r < '0' || r > '9' {
			continue
		}
		if buf.IsFull() {
			break
		}
		buf.AppendDigit(int(r - '0'))
		kept++
	}
	return kept
}
