package specs

const (
	ContentTypeUndefined = ""
	ContentTypeRaw       = "application/octet-stream"
	ContentTypePlain     = "text/plain"

	ContentTypeHTML       = "text/html"
	ContentTypeCSS        = "text/css"
	ContentTypeJavaScript = "application/javascript"
	ContentTypePDF        = "application/pdf"
	ContentTypeZip        = "application/zip"

	ContentTypeGIF  = "image/gif"
	ContentTypeJPEG = "image/jpeg"
	ContentTypePNG  = "image/png"
	ContentTypeSVG  = "image/svg+xml"

	ContentTypeJson = "application/json"
)
