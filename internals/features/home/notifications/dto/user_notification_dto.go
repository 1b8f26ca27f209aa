package dto

// ListNotificationsQuery is GET /api/notifications?userId=&unreadOnly=
type ListNotificationsQuery struct {
	UserID     string `query:"userId"`
	UnreadOnly bool   `query:"unreadOnly"`
}

type MarkAllReadRequest struct {
	UserID string `json:"userId"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}
