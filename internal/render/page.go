package render

import (
	"fmt"

	"github.com/pfrederiksen/bin-days/internal/config"
)

const pageShell = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>%[1]s</title>
  <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css">
  <link href="https://fonts.googleapis.com/css2?family=Poppins:wght@300;400;600&display=swap" rel="stylesheet">
  <style>
    body {
      font-family: 'Poppins', sans-serif;
      background: %[4]s;
      display: flex; justify-content: center; align-items: center;
      min-height: 100vh; margin: 0; padding: 24px;
    }
    .container {
      background: %[5]s; padding: 25px; border-radius: 12px;
      box-shadow: 0px 4px 10px rgba(0,0,0,0.1);
      width: 360px; max-width: 100%%; text-align: center;
    }
    h1 { color: %[3]s; font-size: 24px; margin-bottom: 20px; }
    h2 { font-size: 18px; color: #444; margin: 14px 0 10px; font-weight: 700; }
    h3 { font-size: 16px; color: #555; margin: 10px 0 8px; font-weight: 600; }
    ul { list-style: none; padding: 0; margin: 0 0 8px 0; }
    li {
      background: %[6]s; margin: 6px 0; padding: 10px; border-radius: 6px;
      font-size: 15px; color: #333; font-weight: 500;
    }
    li a { color: inherit; text-decoration: none; }
    .note { font-size: 12px; color: #666; margin-top: 10px; }
    .back { display:inline-block; margin-top:16px; text-decoration:none; color:#0066cc; }
  </style>
</head>
<body>
  <div class="container">
    <h1><i class="fas %[2]s"></i> %[1]s</h1>
    %[7]s
    <a class="back" href="/">← Back</a>
  </div>
</body>
</html>`

// Page wraps body in the full HTML page shell.
func Page(title, icon string, theme config.Theme, body string) string {
	return fmt.Sprintf(pageShell, title, icon, theme.Heading, theme.Body, theme.Card, theme.ListItem, body)
}

// IndexTheme is the theme of the variant index page.
var IndexTheme = config.Theme{
	Heading:  "#0066cc",
	Body:     "#f7f9fc",
	Card:     "#fff",
	ListItem: "#eef3f7",
}
