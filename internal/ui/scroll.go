package ui

// scrollList tracks a highlighted row and the first visible row of a list
// rendered one row per item.
type scrollList struct {
	cursor   int
	offset   int // scroll offset for visible window
	count    int
	rows     int // rows available for items
	lastGKey bool
}

func (s *scrollList) setCount(n int) {
	s.count = n
	s.clamp()
}

func (s *scrollList) setRows(rows int) {
	if rows < 1 {
		rows = 1
	}
	s.rows = rows
	s.ensureVisible()
}

func (s *scrollList) up() {
	s.lastGKey = false
	if s.cursor > 0 {
		s.cursor--
		s.ensureVisible()
	}
}

func (s *scrollList) down() {
	s.lastGKey = false
	if s.cursor < s.count-1 {
		s.cursor++
		s.ensureVisible()
	}
}

func (s *scrollList) top() {
	s.lastGKey = false
	s.cursor = 0
	s.offset = 0
}

func (s *scrollList) bottom() {
	s.lastGKey = false
	if s.count > 0 {
		s.cursor = s.count - 1
		s.ensureVisible()
	}
}

func (s *scrollList) halfPageDown() {
	s.lastGKey = false
	s.cursor += s.rows / 2
	s.clamp()
}

func (s *scrollList) halfPageUp() {
	s.lastGKey = false
	s.cursor -= s.rows / 2
	s.clamp()
}

// handleG reports whether this "g" completed a "gg".
func (s *scrollList) handleG() bool {
	if s.lastGKey {
		s.top()
		return true
	}
	s.lastGKey = true
	return false
}

func (s *scrollList) moveTo(i int) {
	s.lastGKey = false
	s.cursor = i
	s.clamp()
}

func (s *scrollList) clamp() {
	if s.cursor >= s.count {
		s.cursor = s.count - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
	s.ensureVisible()
}

// ensureVisible adjusts offset so the cursor is within the visible window.
func (s *scrollList) ensureVisible() {
	rows := s.rows
	if rows < 1 {
		rows = 1
	}
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+rows {
		s.offset = s.cursor - rows + 1
	}
	if maxOffset := s.count - rows; s.offset > maxOffset {
		s.offset = maxOffset
	}
	if s.offset < 0 {
		s.offset = 0
	}
}

// window returns the [start, end) range of visible items.
func (s *scrollList) window() (int, int) {
	end := s.offset + s.rows
	if end > s.count {
		end = s.count
	}
	return s.offset, end
}

// truncate shortens s to at most n cells, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
