package shell

import "strings"

// Rewrite produces new config content holding exactly one live PATH
// declaration for the given entries.
//
// Policy is replace-first, remove-rest: the earliest declaration's line
// range is replaced with the freshly rendered block, every other
// declaration's range is deleted outright, and all remaining lines keep
// their original text and relative order. A file with accumulated,
// contradictory PATH statements therefore collapses to a single fresh
// declaration sitting where the user first put one. When the content
// holds no declaration at all the block is appended at the end.
//
// The original trailing-newline convention is preserved; the append
// path always terminates the file with a newline.
func Rewrite(content string, entries []string, h Handler) string {
	decls := h.Declarations(content)
	block := h.FormatDeclaration(entries)

	if len(decls) == 0 {
		if content == "" {
			return block + "\n"
		}
		if !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		return content + block + "\n"
	}

	trailingNewline := strings.HasSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	if trailingNewline {
		// Split leaves one empty element after the final newline.
		lines = lines[:len(lines)-1]
	}

	// Anchor on the earliest-starting declaration; ties keep the first
	// discovered, so kind-specific scans outrank generic ones.
	anchor := decls[0]
	for _, d := range decls[1:] {
		if d.StartLine < anchor.StartLine {
			anchor = d
		}
	}

	// All ranges index the original line list, so membership filtering
	// needs no re-numbering after removals.
	drop := make(map[int]bool)
	for _, d := range decls {
		for line := d.StartLine; line <= d.EndLine; line++ {
			drop[line] = true
		}
	}

	var out []string
	for idx, line := range lines {
		lineNo := idx + 1
		if lineNo == anchor.StartLine {
			out = append(out, strings.Split(block, "\n")...)
			continue
		}
		if drop[lineNo] {
			continue
		}
		out = append(out, line)
	}

	result := strings.Join(out, "\n")
	if trailingNewline {
		result += "\n"
	}
	return result
}
