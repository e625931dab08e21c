package httpd

// indexPage is the static catalog served on / and /index.html. Its content
// is informational only; the framing contract is what matters.
const indexPage = `<!DOCTYPE html>
<html>
<head>
    <title>httpd</title>
    <style>
        body {
            font-family: 'Segoe UI', Arial, sans-serif;
            max-width: 800px;
            margin: 50px auto;
            padding: 20px;
            background: #1d2433;
            color: #e8ebf2;
        }
        .panel {
            background: #273044;
            border-radius: 12px;
            padding: 30px;
        }
        h1 { margin-top: 0; }
        code {
            background: #161b28;
            padding: 2px 6px;
            border-radius: 3px;
            font-family: 'Courier New', monospace;
        }
        .endpoint { margin: 8px 0; }
    </style>
</head>
<body>
    <div class="panel">
        <h1>httpd</h1>
        <p>A small HTTP/1.1 server: one request per connection, bounded
        worker pool, negotiated gzip/deflate/brotli compression.</p>

        <h3>Endpoints</h3>
        <div class="endpoint"><code>GET /</code> - this page</div>
        <div class="endpoint"><code>GET /health</code> - health summary</div>
        <div class="endpoint"><code>GET /metrics</code> - counter exposition</div>
        <div class="endpoint"><code>GET /echo/{text}</code> - echo service</div>
        <div class="endpoint"><code>GET /user-agent</code> - User-Agent header</div>
        <div class="endpoint"><code>GET /files/{filename}</code> - download a file</div>
        <div class="endpoint"><code>POST /files/{filename}</code> - upload a file</div>
        <div class="endpoint"><code>DELETE /files/{filename}</code> - delete a file</div>
        <div class="endpoint"><code>GET /headers</code> - request headers as JSON</div>
        <div class="endpoint"><code>GET /api/info</code> - server description</div>
    </div>
</body>
</html>
`

type serverDescription struct {
	Name      string              `json:"name"`
	Version   string              `json:"version"`
	Features  []string            `json:"features"`
	Endpoints map[string][]string `json:"endpoints"`
}

var serverInfo = serverDescription{
	Name:    "httpd",
	Version: "1.0.0",
	Features: []string{
		"Concurrent connections",
		"HTTP compression (gzip, deflate, brotli)",
		"File serving and uploads",
		"Health and metrics introspection",
		"Structured logging",
	},
	Endpoints: map[string][]string{
		"GET": {
			"/", "/health", "/metrics", "/echo/{text}", "/user-agent",
			"/files/{filename}", "/headers", "/api/info",
		},
		"POST":   {"/files/{filename}"},
		"DELETE": {"/files/{filename}"},
	},
}
