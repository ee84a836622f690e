// Package parser loads build files into a project.Project.
//
// A build file is read by a small event engine: a front-end (XML or HCL)
// turns the document into start, text and end events, and the engine routes
// them to a stack of Handlers. Each open element has exactly one handler;
// the handler a StartElement call returns receives the child's content and
// is told when the child closes.
//
// # Handlers
//
//   - rootHandler accepts the single <project> root.
//   - projectHandler reads the project attributes and dispatches targets,
//     imports and top-level tasks.
//   - TargetHandler declares one target: it decodes the tag attributes,
//     registers the target in the project's namespace, hands nested tags to
//     the ElementProcessor and warns about empty targets when it closes.
//   - elementHandler is the default ElementProcessor's handler for tasks
//     and datatypes resolved through the registry.
//
// # Imports
//
// The Configurator tracks the import context. While an imported file is
// parsed its own <project> wrapper is ignored, duplicate bare target names
// are skipped instead of failing, and every imported target is also
// registered under "<importedProjectName>.<targetName>".
//
// # Errors
//
// Malformed tags produce a *ParseError, semantic conflicts such as a
// duplicate target produce a *BuildError. Both carry the source Location
// and abort the whole load. Targets registered before the failure stay in
// the project; loading is not transactional.
package parser
