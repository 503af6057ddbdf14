package models

// Viewport is the initial map framing: a center coordinate plus a zoom
// level. Zoom is only the starting value; afterwards it belongs to the user.
type Viewport struct {
	CenterLat float64 `json:"center_lat"`
	CenterLng float64 `json:"center_lng"`
	Zoom      float64 `json:"zoom"`
}
