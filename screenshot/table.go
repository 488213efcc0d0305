package screenshot

// Family groups related options. It mirrors the sections of the API reference.
type Family string

const (
	FamilyTarget    Family = "target"
	FamilyViewport  Family = "viewport"
	FamilyCapture   Family = "capture"
	FamilyWait      Family = "wait"
	FamilyPreset    Family = "preset"
	FamilyBlocking  Family = "blocking"
	FamilyPage      Family = "page"
	FamilyEmulation Family = "emulation"
	FamilyNetwork   Family = "network"
	FamilyCache     Family = "cache"
	FamilyPDF       Family = "pdf"
	FamilyStorage   Family = "storage"
	FamilyResponse  Family = "response"
)

const (
	KeyURL  = "url"
	KeyHTML = "html"

	KeyWidth  = "width"
	KeyHeight = "height"
	KeyScale  = "scale"
	KeyMobile = "mobile"

	KeyFullPage = "full_page"
	KeyElement  = "element"
	KeyFormat   = "format"
	KeyQuality  = "quality"

	KeyWaitFor         = "wait_for"
	KeyDelay           = "delay"
	KeyWaitForSelector = "wait_for_selector"
	KeyWaitForTimeout  = "wait_for_timeout"

	KeyPreset = "preset"
	KeyDevice = "device"

	KeyBlockAds           = "block_ads"
	KeyBlockTrackers      = "block_trackers"
	KeyBlockCookieBanners = "block_cookie_banners"
	KeyBlockChatWidgets   = "block_chat_widgets"
	KeyBlockURLs          = "block_urls"
	KeyBlockResources     = "block_resources"

	KeyInjectScript = "inject_script"
	KeyInjectStyle  = "inject_style"
	KeyClick        = "click"
	KeyHide         = "hide"
	KeyRemove       = "remove"

	KeyDarkMode      = "dark_mode"
	KeyReducedMotion = "reduced_motion"
	KeyMediaType     = "media_type"
	KeyUserAgent     = "user_agent"
	KeyTimezone      = "timezone"
	KeyLocale        = "locale"
	KeyGeolocation   = "geolocation"

	KeyHeaders    = "headers"
	KeyCookies    = "cookies"
	KeyAuthBasic  = "auth_basic"
	KeyAuthBearer = "auth_bearer"
	KeyBypassCSP  = "bypass_csp"

	KeyCacheTTL     = "cache_ttl"
	KeyCacheRefresh = "cache_refresh"

	KeyPDFPaperSize         = "pdf_paper_size"
	KeyPDFWidth             = "pdf_width"
	KeyPDFHeight            = "pdf_height"
	KeyPDFLandscape         = "pdf_landscape"
	KeyPDFPrintBackground   = "pdf_print_background"
	KeyPDFMargin            = "pdf_margin"
	KeyPDFMarginTop         = "pdf_margin_top"
	KeyPDFMarginRight       = "pdf_margin_right"
	KeyPDFMarginBottom      = "pdf_margin_bottom"
	KeyPDFMarginLeft        = "pdf_margin_left"
	KeyPDFScale             = "pdf_scale"
	KeyPDFPageRanges        = "pdf_page_ranges"
	KeyPDFHeader            = "pdf_header"
	KeyPDFFooter            = "pdf_footer"
	KeyPDFFitOnePage        = "pdf_fit_one_page"
	KeyPDFPreferCSSPageSize = "pdf_prefer_css_page_size"

	KeyStorageEnabled = "storage_enabled"
	KeyStoragePath    = "storage_path"
	KeyStorageACL     = "storage_acl"

	KeyResponseType = "response_type"
)

const (
	groupViewport = "viewport"
	groupPDF      = "pdf"
	groupStorage  = "storage"
)

// spec describes where an option lands in the nested request body.
// An empty group means the option is sent at the top level under its own name.
type spec struct {
	family Family
	group  string
	param  string
}

func flat(f Family) spec { return spec{family: f} }

func nested(f Family, group, param string) spec {
	return spec{family: f, group: group, param: param}
}

var table = map[string]spec{
	KeyURL:  flat(FamilyTarget),
	KeyHTML: flat(FamilyTarget),

	KeyWidth:  nested(FamilyViewport, groupViewport, "width"),
	KeyHeight: nested(FamilyViewport, groupViewport, "height"),
	KeyScale:  nested(FamilyViewport, groupViewport, "scale"),
	KeyMobile: nested(FamilyViewport, groupViewport, "mobile"),

	KeyFullPage: flat(FamilyCapture),
	KeyElement:  flat(FamilyCapture),
	KeyFormat:   flat(FamilyCapture),
	KeyQuality:  flat(FamilyCapture),

	KeyWaitFor:         flat(FamilyWait),
	KeyDelay:           flat(FamilyWait),
	KeyWaitForSelector: flat(FamilyWait),
	KeyWaitForTimeout:  flat(FamilyWait),

	KeyPreset: flat(FamilyPreset),
	KeyDevice: flat(FamilyPreset),

	KeyBlockAds:           flat(FamilyBlocking),
	KeyBlockTrackers:      flat(FamilyBlocking),
	KeyBlockCookieBanners: flat(FamilyBlocking),
	KeyBlockChatWidgets:   flat(FamilyBlocking),
	KeyBlockURLs:          flat(FamilyBlocking),
	KeyBlockResources:     flat(FamilyBlocking),

	KeyInjectScript: flat(FamilyPage),
	KeyInjectStyle:  flat(FamilyPage),
	KeyClick:        flat(FamilyPage),
	KeyHide:         flat(FamilyPage),
	KeyRemove:       flat(FamilyPage),

	KeyDarkMode:      flat(FamilyEmulation),
	KeyReducedMotion: flat(FamilyEmulation),
	KeyMediaType:     flat(FamilyEmulation),
	KeyUserAgent:     flat(FamilyEmulation),
	KeyTimezone:      flat(FamilyEmulation),
	KeyLocale:        flat(FamilyEmulation),
	KeyGeolocation:   flat(FamilyEmulation),

	KeyHeaders:    flat(FamilyNetwork),
	KeyCookies:    flat(FamilyNetwork),
	KeyAuthBasic:  flat(FamilyNetwork),
	KeyAuthBearer: flat(FamilyNetwork),
	KeyBypassCSP:  flat(FamilyNetwork),

	KeyCacheTTL:     flat(FamilyCache),
	KeyCacheRefresh: flat(FamilyCache),

	KeyPDFPaperSize:         nested(FamilyPDF, groupPDF, "paper_size"),
	KeyPDFWidth:             nested(FamilyPDF, groupPDF, "width"),
	KeyPDFHeight:            nested(FamilyPDF, groupPDF, "height"),
	KeyPDFLandscape:         nested(FamilyPDF, groupPDF, "landscape"),
	KeyPDFPrintBackground:   nested(FamilyPDF, groupPDF, "print_background"),
	KeyPDFMargin:            nested(FamilyPDF, groupPDF, "margin"),
	KeyPDFMarginTop:         nested(FamilyPDF, groupPDF, "margin_top"),
	KeyPDFMarginRight:       nested(FamilyPDF, groupPDF, "margin_right"),
	KeyPDFMarginBottom:      nested(FamilyPDF, groupPDF, "margin_bottom"),
	KeyPDFMarginLeft:        nested(FamilyPDF, groupPDF, "margin_left"),
	KeyPDFScale:             nested(FamilyPDF, groupPDF, "scale"),
	KeyPDFPageRanges:        nested(FamilyPDF, groupPDF, "page_ranges"),
	KeyPDFHeader:            nested(FamilyPDF, groupPDF, "header"),
	KeyPDFFooter:            nested(FamilyPDF, groupPDF, "footer"),
	KeyPDFFitOnePage:        nested(FamilyPDF, groupPDF, "fit_one_page"),
	KeyPDFPreferCSSPageSize: nested(FamilyPDF, groupPDF, "prefer_css_page_size"),

	KeyStorageEnabled: nested(FamilyStorage, groupStorage, "enabled"),
	KeyStoragePath:    nested(FamilyStorage, groupStorage, "path"),
	KeyStorageACL:     nested(FamilyStorage, groupStorage, "acl"),

	KeyResponseType: flat(FamilyResponse),
}

// Known reports whether key is a recognized option name.
func Known(key string) bool {
	_, ok := table[key]
	return ok
}

// FamilyOf returns the family of a recognized option.
func FamilyOf(key string) (Family, bool) {
	s, ok := table[key]
	return s.family, ok
}
