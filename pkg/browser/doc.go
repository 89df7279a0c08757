// Package browser opens URLs.
//
// A Choice names the browser to use. The default choice hands the URL to the
// operating system's URL handler; the named browsers are launched directly.
// How a choice maps to a command depends on the platform:
//
//	darwin   open [-a <App>] <url>
//	windows  rundll32 url.dll,FileProtocolHandler <url>, or start <browser> <url>
//	others   xdg-open <url>, or the first browser binary found in PATH
package browser
