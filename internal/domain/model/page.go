package model

import "strings"

// ページのパス（フロントの静的ページ名）
const (
	PageIndex         = "index.html"
	PageLogin         = "login.html"
	PageCart          = "cart.html"
	PageCheckout      = "checkout.html"
	PageProfile       = "profile.html"
	PageOrderTracking = "order-tracking.html"
	PageAdmin         = "admin.html"
)

type Access int

const (
	AccessPublic Access = iota
	AccessAuth
	AccessAdmin
)

// ログインが必要なページ
var authPages = []string{PageCheckout, PageProfile, PageOrderTracking}

// RequiredAccess はパスの部分一致でガードを決める。
func RequiredAccess(path string) Access {
	if strings.Contains(path, PageAdmin) {
		return AccessAdmin
	}
	for _, p := range authPages {
		if strings.Contains(path, p) {
			return AccessAuth
		}
	}
	return AccessPublic
}

// 描画できるページ
var knownPages = []string{
	PageIndex, PageLogin, PageCart, PageCheckout,
	PageProfile, PageOrderTracking, PageAdmin,
}

func IsKnownPage(name string) bool {
	for _, p := range knownPages {
		if p == name {
			return true
		}
	}
	return false
}
