// Package i18n negotiates the page locale from the Accept-Language header.
// Two locales are supported: English (default) and Hindi.
package i18n

import "golang.org/x/text/language"

var (
	DefaultLocale = language.English
	supported     = []language.Tag{language.English, language.Hindi}
	matcher       = language.NewMatcher(supported)
)

// SelectLocale maps the request's Accept-Language header to "en" or "hi".
// Anything unparseable or unsupported falls back to the default.
func SelectLocale(acceptLanguage string) string {
	if acceptLanguage == "" {
		return DefaultLocale.String()
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale.String()
	}
	_, index, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLocale.String()
	}
	base, _ := supported[index].Base()
	return base.String()
}
