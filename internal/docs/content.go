package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with codesplit",
		Content: topicQuickstart,
	},
	{
		Name:    "config",
		Title:   "Configuration Reference",
		Summary: "Config file schema, fields, and defaults",
		Content: topicConfig,
	},
	{
		Name:    "splitting",
		Title:   "How Input Is Split",
		Summary: "Unit boundaries, file names, and what gets dropped",
		Content: topicSplitting,
	},
	{
		Name:    "packages",
		Title:   "Package Normalization",
		Summary: "How --package rewrites and inserts package statements",
		Content: topicPackages,
	},
	{
		Name:    "manifest",
		Title:   "Run Manifest",
		Summary: "What .codesplit-manifest.json records and how status reads it",
		Content: topicManifest,
	},
}

const topicQuickstart = `Quick Start
===========

codesplit turns a block of generated source text (for example an LLM
response holding several Java classes) into one file per class, laid out
in directories that follow the package name.

1. Optionally create a config file:

    codesplit init

   This writes .codesplit.yaml in the current directory.

2. Split a response:

    codesplit split response.txt

   Files land under ./parsed by default, e.g. parsed/com/example/Foo.java.

3. Force every public class into one package:

    codesplit split --package com.example response.txt

4. Review the last run:

    codesplit status

CLI Commands
------------

  codesplit split <input>...             Split inputs into files
  codesplit split -o DIR <input>...      Write under DIR
  codesplit split -p PKG <input>...      Normalize package statements first
  codesplit split --fences <input>...    Only use code inside markdown fences
  codesplit split --fence-lang java ...  Only fences tagged java (or untagged)
  codesplit split --strict <input>...    Exit non-zero if any file failed
  codesplit normalize -p PKG <input>     Print input with package statements fixed
  codesplit status [DIR]                 Show the manifest of the last split
  codesplit init                         Write an example .codesplit.yaml
  codesplit docs [topic]                 Show documentation

Inputs may be files, glob patterns such as 'responses/**/*.txt', or '-'
for standard input.
`

const topicConfig = `Configuration Reference
=======================

codesplit looks for .codesplit.yaml in the current directory and its
parents. Use --config to point at a specific file. Without a file the
built-in defaults apply.

Fields
------

  file-name-patterns  list    Ordered regular expressions (RE2 syntax).
                              Each is anchored at line start and the line
                              must end with '{'. Group 1 is the file name.
                              Default: public and package-private class,
                              interface, enum, record and @interface.
  extension           string  Appended to the name. Default: .java
  package             string  Default package for normalization (optional).
  output              string  Output root. Default: parsed
  extract-fences      bool    Keep only markdown code fence contents.
  fence-languages     list    With extract-fences, keep only fences tagged
                              with one of these languages. Untagged fences
                              are always kept. Flag: --fence-lang.
  header              string  Template stamped on top of every file.
                              Fields: {{.Source}}, {{.RunID}}, {{.Date}}.

Command-line flags override config values.

Validation Rules
----------------

- Every pattern must compile and contain a capturing group.
- extension must start with '.' and contain no path separators.
- package must be a dotted identifier such as com.example.
- header must be a valid text/template using only the fields above.
`

const topicSplitting = `How Input Is Split
==================

Input is read line by line.

- A line starting with "package " ends the current unit and opens a new
  one. The unit is written only if a declaration name was found in it;
  otherwise its lines carry over into the next unit. The package line
  belongs to the new unit's file.
- The first line matching a file-name pattern names the unit. Later
  matches in the same unit (nested or secondary types) are ignored.
- A line starting with "}" belongs to the unit and closes it. Lines after
  it are dropped until the next package line.
- Text before the first package line is dropped.

A unit goes to <output>/<package path>/<Name><extension>, with the header
prepended. An existing file with the same name is replaced.

If a file cannot be written the error is printed and the remaining units
are still written.
`

const topicPackages = `Package Normalization
=====================

With --package (or the package config field), every line starting with
"public " is checked before splitting:

- Scanning upward, if a "package " line is found before a line starting
  with "}", it is rewritten to the target package when it differs.
- Otherwise a package statement is inserted right after that "}" line, or
  at the top of the input, preceded by a blank line.

Several public declarations in one unit share one inserted statement.
Running normalization twice gives the same result as running it once.

Use 'codesplit normalize -p PKG <input>' to preview the result.
`

const topicManifest = `Run Manifest
============

Every split run that writes or fails to write at least one file saves
<output>/.codesplit-manifest.json:

  run_id     UUID of the run, also stamped in each file header.
  package    Target package, when normalization was used.
  inputs     Input labels in processing order.
  start/end  Run timestamps and duration.
  status     completed, partial (some writes failed), or empty.
  written    Files written, relative to the output root, with line counts.
  failed     Files that could not be written and why.

'codesplit status [DIR]' renders it.
`
