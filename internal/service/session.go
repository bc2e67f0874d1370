package service

// sessionState tracks what the create/edit form is doing. The form is
// visible whenever the state is not closed.
type sessionState int

const (
	sessionClosed sessionState = iota
	sessionCreating
	sessionEditing
)

// editSession is the transient form state: which mode the form is in
// and, when editing, the id of the target event. Only the id is held,
// never a copy of the event, so the target is always re-resolved
// through the repository.
type editSession struct {
	state    sessionState
	targetID int64
}

func (s *editSession) openCreate() {
	s.state = sessionCreating
	s.targetID = 0
}

func (s *editSession) openEdit(id int64) {
	s.state = sessionEditing
	s.targetID = id
}

func (s *editSession) close() {
	s.state = sessionClosed
	s.targetID = 0
}

func (s *editSession) open() bool {
	return s.state != sessionClosed
}

func (s *editSession) editing() (int64, bool) {
	if s.state != sessionEditing {
		return 0, false
	}
	return s.targetID, true
}
