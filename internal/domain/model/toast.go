package model

import "time"

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// 表示は1枠だけ。新しいものが来たら置き換え。
type Toast struct {
	Message  string    `json:"message"`
	Severity Severity  `json:"severity"`
	ShownAt  time.Time `json:"shown_at"`
}

// 色のクラスとアイコン
type ToastStyle struct {
	Color string
	Icon  string
}

var toastStyles = map[Severity]ToastStyle{
	SeveritySuccess: {Color: "bg-green-500", Icon: "fa-check-circle"},
	SeverityError:   {Color: "bg-red-500", Icon: "fa-exclamation-triangle"},
	SeverityInfo:    {Color: "bg-blue-500", Icon: "fa-info-circle"},
	SeverityWarning: {Color: "bg-yellow-500", Icon: "fa-exclamation-circle"},
}

// Style は未知のseverityならグレー＋infoアイコンを返します。
func (s Severity) Style() ToastStyle {
	if st, ok := toastStyles[s]; ok {
		return st
	}
	return ToastStyle{Color: "bg-gray-500", Icon: "fa-info-circle"}
}
