package mailer

import (
	"bytes"
	"html/template"
	"time"
)

type emailSection struct {
	Label string
	Color template.CSS
	Cards []CardAction
}

type emailData struct {
	Improvement float64
	Monthly     float64
	Sections    []emailSection
	Year        int
}

var resultsTemplate = template.Must(template.New("results").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Your Credit Card Portfolio Strategy</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f1f5f9;">
  <table width="100%" cellpadding="0" cellspacing="0" style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <tr>
      <td>
        <table width="100%" cellpadding="0" cellspacing="0" style="background: #00438A; border-radius: 12px 12px 0 0; padding: 32px; text-align: center;">
          <tr>
            <td>
              <h1 style="color: #ffffff; margin: 0 0 8px 0; font-size: 24px;">Your Portfolio Strategy</h1>
              <p style="color: #5493D5; margin: 0; font-size: 14px;">from Wallzy Wallet</p>
            </td>
          </tr>
        </table>
        <table width="100%" cellpadding="0" cellspacing="0" style="background: #ffffff; padding: 32px;">
          <tr>
            <td style="text-align: center; padding-bottom: 32px;">
              <p style="color: #64748b; margin: 0 0 8px 0; font-size: 14px;">Your potential annual rewards improvement:</p>
              <p style="color: #FFC402; margin: 0; font-size: 48px; font-weight: 700;">+${{printf "%.0f" .Improvement}}</p>
              <p style="color: #94a3b8; margin: 8px 0 0 0; font-size: 13px;">That's ${{printf "%.0f" .Monthly}}/month more in rewards</p>
            </td>
          </tr>
{{- range .Sections}}{{if .Cards}}
          <tr>
            <td style="padding-bottom: 8px;">
              <h3 style="color: {{.Color}}; font-size: 15px; margin: 0 0 8px 0;">{{.Label}}</h3>
              <table width="100%" cellpadding="0" cellspacing="0">
{{- $color := .Color}}{{range .Cards}}
                <tr>
                  <td style="padding: 12px; background: #f8fafc; border-radius: 8px; margin-bottom: 6px; border-left: 3px solid {{$color}};">
                    <div style="font-weight: 600; color: #00438A; font-size: 15px;">{{.Name}}</div>
                    <div style="color: #64748b; font-size: 13px; margin-top: 4px;">{{.Reason}}</div>
                    {{if gt .ANV 0.0}}<div style="color: #FFC402; font-size: 13px; font-weight: 600; margin-top: 4px;">+${{printf "%.0f" .ANV}}/yr net value</div>{{end}}
                    {{if .Downgrade}}<div style="color: #94a3b8; font-size: 12px; margin-top: 4px;">Downgrade to: {{.Downgrade}}</div>{{end}}
                    {{if .UpgradeFrom}}<div style="color: #94a3b8; font-size: 12px; margin-top: 4px;">Upgrade from: {{.UpgradeFrom}}</div>{{end}}
                  </td>
                </tr>
                <tr><td style="height: 6px;"></td></tr>
{{- end}}
              </table>
            </td>
          </tr>
          <tr><td style="height: 16px;"></td></tr>
{{- end}}{{end}}
        </table>
        <table width="100%" cellpadding="0" cellspacing="0" style="background: #00438A; border-radius: 0 0 12px 12px; padding: 24px; text-align: center;">
          <tr>
            <td>
              <p style="color: #5493D5; margin: 0 0 8px 0; font-size: 13px;">
                Start building your optimized portfolio today!
              </p>
              <a href="https://wallzywallet.com" style="color: #FFC402; font-size: 14px; text-decoration: none; font-weight: 500;">
                Learn more about Wallzy &rarr;
              </a>
              <p style="color: #5493D5; margin: 16px 0 0 0; font-size: 11px; opacity: 0.8;">
                &copy; {{.Year}} Wallzy Wallet. All rights reserved.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>
`))

// renderResults builds the HTML body for a results email.
func renderResults(results ResultsEmail) (string, error) {
	data := emailData{
		Improvement: results.Improvement,
		Monthly:     results.Improvement / 12,
		Year:        time.Now().Year(),
		Sections: []emailSection{
			{Label: "Apply For", Color: "#10b981", Cards: results.Apply},
			{Label: "Upgrade", Color: "#3b82f6", Cards: results.Upgrade},
			{Label: "Keep", Color: "#00438A", Cards: results.Keep},
			{Label: "Remove / Downgrade", Color: "#ef4444", Cards: results.Remove},
		},
	}

	var buf bytes.Buffer
	if err := resultsTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
