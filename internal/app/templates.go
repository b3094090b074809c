package app

// Starter prompt templates seeded by `breakdown init`. Placeholders use the
// {name} syntax consumed by the templating engine; unknown placeholders are
// left in place, so these templates stay valid even with partial variable
// maps.

const toIssuePrompt = `# Break the project into issues

Read the project description below and split it into concrete issues.
Each issue should be independently actionable and small enough to finish
in one sitting.

## Project description

{input_text_file}
{input_text}

## Output

Write the issues as a Markdown list to {destination_path}.
Follow the structure in {schema_file} if it exists.
`

const toTaskPrompt = `# Break the issue into tasks

Read the issue below and split it into ordered implementation tasks.
Keep each task focused on a single change.

## Issue

{input_text_file}
{input_text}

## Output

Write the tasks as a Markdown checklist to {destination_path}.
Follow the structure in {schema_file} if it exists.
`

const toTaskGenericPrompt = `# Refine the task list

Read the input below and produce a cleaned-up, ordered task list.

## Input

{input_text_file}
{input_text}

## Output

Write the result to {destination_path}.
`

const summaryProjectPrompt = `# Summarize the project

Read the material below and produce a concise project summary covering
goals, scope, and current status.

## Material

{input_text_file}
{input_text}

## Output

Write the summary to {destination_path}.
`

const summaryIssuePrompt = `# Summarize the issue

Read the issue below and produce a one-paragraph summary plus a list of
open questions.

## Issue

{input_text_file}
{input_text}

## Output

Write the summary to {destination_path}.
`

const defectIssuePrompt = `# Turn the defect report into an issue

Read the defect report below and rewrite it as a structured issue:
observed behavior, expected behavior, reproduction steps, and suspected
area.

## Defect report

{input_text_file}
{input_text}

## Output

Write the issue to {destination_path}.
Follow the structure in {schema_file} if it exists.
`

const issueSchema = `# Issue structure

- Title: one line, imperative.
- Context: why this issue exists.
- Acceptance criteria: bullet list, each independently checkable.
`

const taskSchema = `# Task list structure

- One task per line, Markdown checkbox format.
- Each task names the file or component it touches.
- Order tasks so each builds on the previous ones.
`
