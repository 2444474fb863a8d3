/*
The resp package provides a high-level API for responding to HTTP requests
with an easy way to configure the responses application-wide.

resp provides three main ways of responding to an HTTP request:
  - rendering the client entry page, or another HTML template
  - rendering JSON data
  - redirecting
*/
package resp
