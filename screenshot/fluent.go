package screenshot

type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatWebP Format = "webp"
	FormatPDF  Format = "pdf"
)

type WaitCondition string

const (
	WaitLoad             WaitCondition = "load"
	WaitDOMContentLoaded WaitCondition = "domcontentloaded"
	WaitNetworkIdle      WaitCondition = "networkidle"
)

type Cookie struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Domain string `json:"domain,omitempty"`
	Path   string `json:"path,omitempty"`
}

// target

func (o Options) URL(u string) Options     { return o.With(KeyURL, u) }
func (o Options) HTML(html string) Options { return o.With(KeyHTML, html) }

// viewport

func (o Options) Width(px int) Options         { return o.With(KeyWidth, px) }
func (o Options) Height(px int) Options        { return o.With(KeyHeight, px) }
func (o Options) Scale(factor float64) Options { return o.With(KeyScale, factor) }
func (o Options) Mobile(on bool) Options       { return o.With(KeyMobile, on) }

func (o Options) Viewport(width, height int) Options {
	return o.Width(width).Height(height)
}

// capture

func (o Options) FullPage(on bool) Options        { return o.With(KeyFullPage, on) }
func (o Options) Element(selector string) Options { return o.With(KeyElement, selector) }
func (o Options) Format(f Format) Options         { return o.With(KeyFormat, string(f)) }
func (o Options) Quality(q int) Options           { return o.With(KeyQuality, q) }

// wait

func (o Options) WaitFor(c WaitCondition) Options { return o.With(KeyWaitFor, string(c)) }
func (o Options) Delay(ms int) Options            { return o.With(KeyDelay, ms) }
func (o Options) WaitForSelector(selector string) Options {
	return o.With(KeyWaitForSelector, selector)
}
func (o Options) WaitForTimeout(ms int) Options { return o.With(KeyWaitForTimeout, ms) }

// presets

func (o Options) Preset(id string) Options   { return o.With(KeyPreset, id) }
func (o Options) Device(name string) Options { return o.With(KeyDevice, name) }

// blocking

func (o Options) BlockAds(on bool) Options           { return o.With(KeyBlockAds, on) }
func (o Options) BlockTrackers(on bool) Options      { return o.With(KeyBlockTrackers, on) }
func (o Options) BlockCookieBanners(on bool) Options { return o.With(KeyBlockCookieBanners, on) }
func (o Options) BlockChatWidgets(on bool) Options   { return o.With(KeyBlockChatWidgets, on) }

// BlockURLs blocks requests whose URL matches any of the given glob patterns.
func (o Options) BlockURLs(patterns ...string) Options { return o.With(KeyBlockURLs, patterns) }

// BlockResources blocks resource types such as "font", "media" or "image".
func (o Options) BlockResources(types ...string) Options {
	return o.With(KeyBlockResources, types)
}

// page manipulation

func (o Options) InjectScript(js string) Options     { return o.With(KeyInjectScript, js) }
func (o Options) InjectStyle(css string) Options     { return o.With(KeyInjectStyle, css) }
func (o Options) Click(selector string) Options      { return o.With(KeyClick, selector) }
func (o Options) Hide(selectors ...string) Options   { return o.With(KeyHide, selectors) }
func (o Options) Remove(selectors ...string) Options { return o.With(KeyRemove, selectors) }

// browser emulation

func (o Options) DarkMode(on bool) Options      { return o.With(KeyDarkMode, on) }
func (o Options) ReducedMotion(on bool) Options { return o.With(KeyReducedMotion, on) }
func (o Options) MediaType(t string) Options    { return o.With(KeyMediaType, t) }
func (o Options) UserAgent(ua string) Options   { return o.With(KeyUserAgent, ua) }
func (o Options) Timezone(tz string) Options    { return o.With(KeyTimezone, tz) }
func (o Options) Locale(locale string) Options  { return o.With(KeyLocale, locale) }

func (o Options) Geolocation(latitude, longitude, accuracy float64) Options {
	return o.With(KeyGeolocation, map[string]any{
		"latitude":  latitude,
		"longitude": longitude,
		"accuracy":  accuracy,
	})
}

// network

func (o Options) Headers(h map[string]string) Options { return o.With(KeyHeaders, h) }
func (o Options) Cookies(c ...Cookie) Options         { return o.With(KeyCookies, c) }
func (o Options) AuthBearer(token string) Options     { return o.With(KeyAuthBearer, token) }
func (o Options) BypassCSP(on bool) Options           { return o.With(KeyBypassCSP, on) }

func (o Options) AuthBasic(username, password string) Options {
	return o.With(KeyAuthBasic, map[string]string{
		"username": username,
		"password": password,
	})
}

// cache

func (o Options) CacheTTL(seconds int) Options { return o.With(KeyCacheTTL, seconds) }
func (o Options) CacheRefresh(on bool) Options { return o.With(KeyCacheRefresh, on) }

// pdf

func (o Options) PDFPaperSize(size string) Options     { return o.With(KeyPDFPaperSize, size) }
func (o Options) PDFWidth(w string) Options            { return o.With(KeyPDFWidth, w) }
func (o Options) PDFHeight(h string) Options           { return o.With(KeyPDFHeight, h) }
func (o Options) PDFLandscape(on bool) Options         { return o.With(KeyPDFLandscape, on) }
func (o Options) PDFPrintBackground(on bool) Options   { return o.With(KeyPDFPrintBackground, on) }
func (o Options) PDFMargin(m string) Options           { return o.With(KeyPDFMargin, m) }
func (o Options) PDFMarginTop(m string) Options        { return o.With(KeyPDFMarginTop, m) }
func (o Options) PDFMarginRight(m string) Options      { return o.With(KeyPDFMarginRight, m) }
func (o Options) PDFMarginBottom(m string) Options     { return o.With(KeyPDFMarginBottom, m) }
func (o Options) PDFMarginLeft(m string) Options       { return o.With(KeyPDFMarginLeft, m) }
func (o Options) PDFScale(factor float64) Options      { return o.With(KeyPDFScale, factor) }
func (o Options) PDFPageRanges(ranges string) Options  { return o.With(KeyPDFPageRanges, ranges) }
func (o Options) PDFHeader(html string) Options        { return o.With(KeyPDFHeader, html) }
func (o Options) PDFFooter(html string) Options        { return o.With(KeyPDFFooter, html) }
func (o Options) PDFFitOnePage(on bool) Options        { return o.With(KeyPDFFitOnePage, on) }
func (o Options) PDFPreferCSSPageSize(on bool) Options { return o.With(KeyPDFPreferCSSPageSize, on) }

// storage

func (o Options) StorageEnabled(on bool) Options  { return o.With(KeyStorageEnabled, on) }
func (o Options) StoragePath(path string) Options { return o.With(KeyStoragePath, path) }
func (o Options) StorageACL(acl string) Options   { return o.With(KeyStorageACL, acl) }

// response

const (
	ResponseBinary = "binary"
	ResponseJSON   = "json"
)

func (o Options) ResponseType(t string) Options { return o.With(KeyResponseType, t) }
