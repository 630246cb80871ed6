package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// NoticeKind selects the colour of a notice
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeSuccess
	NoticeError
)

// NoticeData is a singleton banner shown at the top of the screen
type NoticeData struct {
	Text    string
	Kind    NoticeKind
	Expires time.Time // zero means it stays until replaced or cleared
}

var Notice = donburi.NewComponentType[NoticeData]()
