// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	BuildFileNotFoundId Id = iota + 1
	BuildFileInvalidId
	ConfigurationInvalidId
	JlinkNotFoundId
	JlinkFailedId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // must never be empty
	extLinks []HttpLink  // external links that might be useful for the user
}

const jlinkManual HttpLink = "https://docs.oracle.com/en/java/javase/21/docs/specs/man/jlink.html"

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render renders the issue's Markdown with the given glamour style
// ("dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
		for _, link := range i.extLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	buildFileNotFoundIssue = &Issue{
		id: BuildFileNotFoundId,
		mdMsg: `
# No build description found!

jlinkrun looks for one of these files in the current directory, in order:
1. jlink.cue
2. jlink.toml
3. jlink.yaml / jlink.yml
4. jlink.hcl

## Things you can try:
- Create a starter build description:
~~~
$ jlinkrun init
~~~
- Or point at an existing one:
~~~
$ jlinkrun build -f path/to/jlink.toml
~~~`,
		docLinks: []HttpLink{jlinkManual},
	}

	buildFileInvalidIssue = &Issue{
		id: BuildFileInvalidId,
		mdMsg: `
# The build description could not be read!

The file has a syntax error, an unknown field or a value of the wrong type.

## Things you can try:
- Check the field reported in the error message
- List the supported fields and their types:
~~~
$ jlinkrun options
~~~
- Field names are snake_case in every format (e.g. strip_debug, module_paths)`,
		docLinks: []HttpLink{jlinkManual},
	}

	configurationInvalidIssue = &Issue{
		id: ConfigurationInvalidId,
		mdMsg: `
# The jlink options are invalid!

jlink was not started because the options failed validation.

## Common causes:
- ` + "`output`" + ` is missing: it is the only mandatory option
- an entry of ` + "`module_paths`" + ` does not exist (relative paths are resolved against the build description's directory)
- a launcher without a name or module, or with an empty main class
- ` + "`endian`" + ` is neither little nor big

## Things you can try:
- Preview the assembled command without running it:
~~~
$ jlinkrun build --dry-run
~~~`,
		docLinks: []HttpLink{jlinkManual},
	}

	jlinkNotFoundIssue = &Issue{
		id: JlinkNotFoundId,
		mdMsg: `
# jlink executable not found!

jlinkrun looks for jlink in this order:
1. the --jlink flag or ` + "`jdk.executable`" + ` in the configuration
2. the configured toolchain matching the build description's ` + "`toolchain`" + `
3. ` + "`jdk.home`" + ` in the configuration, then JAVA_HOME
4. the PATH

## Things you can try:
- Install a JDK (version 9 or newer) and set JAVA_HOME
- Declare toolchains in the configuration:
~~~
$ jlinkrun config init
~~~`,
		docLinks: []HttpLink{jlinkManual},
	}

	jlinkFailedIssue = &Issue{
		id: JlinkFailedId,
		mdMsg: `
# jlink failed!

jlink ran but exited with a non-zero status. Its error output is shown above.

## Things you can try:
- Make sure the output directory does not exist yet; jlink refuses to overwrite it
- Check that every module in ` + "`add_modules`" + ` can be found on the module paths
- Re-run with ` + "`verbose: true`" + ` in the build description for jlink's own diagnostics`,
		docLinks: []HttpLink{jlinkManual},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load the configuration!

## Things you can try:
- Show where jlinkrun looks for its configuration:
~~~
$ jlinkrun config path
~~~
- Validate the file by printing the effective configuration:
~~~
$ jlinkrun config show
~~~`,
		docLinks: []HttpLink{jlinkManual},
	}

	issues = map[Id]*Issue{
		buildFileNotFoundIssue.Id():    buildFileNotFoundIssue,
		buildFileInvalidIssue.Id():     buildFileInvalidIssue,
		configurationInvalidIssue.Id(): configurationInvalidIssue,
		jlinkNotFoundIssue.Id():        jlinkNotFoundIssue,
		jlinkFailedIssue.Id():          jlinkFailedIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
	}
)

// Values returns every catalogued issue ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
