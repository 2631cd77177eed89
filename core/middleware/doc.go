// Package middleware groups the Fiber middleware shared by every feature.
//
//   - auth: rejects requests without the configured X-Api-Key header.
//   - rayid: tags each request with a ray ID, exposed as the X-Ray-ID
//     response header and the ray_id log field.
//
// Both are registered globally in the start command, rayid first.
package middleware
