package validation

import "strings"

// sqlInjectionPatterns are scanned by ContainsSQLInjection over a lowercased
// copy of the input. Plain substring containment only: no regex, so no
// backtracking risk. First match short-circuits.
var sqlInjectionPatterns = []string{
	// statement keywords
	"union select",
	"union all",
	"select *",
	"select 1",
	"select 0",
	"insert into",
	"update set",
	"delete from",
	"drop table",
	"drop database",
	"create table",
	"alter table",
	"exec ",
	"execute ",
	"sp_",
	"xp_",

	// comment and termination tokens
	"--",
	"/*",
	"*/",
	";--",
	";/*",
	"*/;",

	// injection helper functions
	"char(",
	"chr(",
	"ascii(",
	"substring(",
	"concat(",
	"waitfor delay",
	"benchmark(",
	"sleep(",
	"delay(",

	// system catalogs
	"information_schema",
	"sysobjects",
	"syscolumns",
	"sys.tables",

	// always-true conditionals
	" or 1=",
	" or 1=1",
	" and 1=",
	" and 1=1",
	" having 1=",
	" where 1=",

	// quote termination combos
	"';",
	"\";",
	"';--",
	"\";--",
}

// xssPatterns are scanned by ContainsXSS over a lowercased copy of the input.
var xssPatterns = []string{
	// tag markers
	"<script",
	"</script>",
	"<iframe",
	"</iframe>",
	"<svg onload",
	"<img onerror",

	// URI schemes
	"javascript:",
	"vbscript:",
	"data:text/html",

	// inline event handlers
	"onload=",
	"onerror=",
	"onclick=",
	"onmouseover=",
	"onfocus=",
	"onblur=",
	"onkeyup=",
	"onkeydown=",
	"onsubmit=",
	"onchange=",
	"onselect=",
	"onreset=",

	// script primitives
	"alert(",
	"confirm(",
	"prompt(",
	"document.cookie",
	"document.write",
	"window.location",
	"eval(",
	"expression(",
	"url(javascript:",

	// encoded variants
	`\x3c`,
	"&#60;",
	"&lt;script",
}

// ContainsSQLInjection reports whether the input contains any known
// SQL-injection pattern. The check is case-insensitive and stateless.
//
// This is a heuristic substring scan: legitimate text containing a flagged
// token (e.g. an essay about databases) is a false positive, and obfuscated
// payloads can slip through. Callers must not treat a false verdict as proof
// of safety.
func ContainsSQLInjection(input string) bool {
	lowered := strings.ToLower(input)
	for _, pattern := range sqlInjectionPatterns {
		if strings.Contains(lowered, pattern) {
			return true
		}
	}
	return false
}

// ContainsXSS reports whether the input contains any known cross-site
// scripting pattern. The check is case-insensitive and stateless.
func ContainsXSS(input string) bool {
	lowered := strings.ToLower(input)
	for _, pattern := range xssPatterns {
		if strings.Contains(lowered, pattern) {
			return true
		}
	}
	return false
}
