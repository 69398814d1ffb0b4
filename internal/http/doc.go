// Package http provides HTTP handlers and middleware for the activities API.
//
// The router exposes the following endpoints:
//   - GET /activities: every activity keyed by name, in catalog order. Each value is
//     {"description","schedule","max_participants","participants"}.
//   - POST /activities/{name}/signup?email=: adds the email to the roster. Responds
//     {"message":"Signed up <email> for <name>"}; 404 {"detail":"Activity not found"}
//     for unknown activities and 400 {"detail":"Student already signed up"} for
//     duplicates.
//   - DELETE /activities/{name}/unregister?email=: removes the email from the roster.
//     Responds {"message":"Unregistered <email> from <name>"}; 404 for unknown
//     activities and 400 {"detail":"Student not signed up for this activity"} when the
//     email is not enrolled.
//   - GET /: redirects to the embedded front-end under /static/.
//   - GET /metrics and GET /healthz for operators.
//
// Activity names in the path are percent-decoded, so "Basketball%20Team" addresses
// "Basketball Team". An empty email yields 422; whitespace is accepted as given.
package http
