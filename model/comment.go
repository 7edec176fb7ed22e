package model

import "time"

type Comment struct {
	ID         int64
	Text       string
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Created    time.Time
}

type CommentView struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

func (c *Comment) View() CommentView {
	return CommentView{ID: c.ID, Text: c.Text, AuthorName: c.AuthorName, Created: c.Created}
}
