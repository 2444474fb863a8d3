/*
Package template renders the entry page of the media client.

A Parser looks up templates in the built client first (usually the Vite dist directory)
and falls back to the index.html shipped with this package.
The entry page calls these functions:

	{{ title .Title }}      the page title
	{{ asset "assets/index.js" }}
	{{ tag "assets/index.js" false }}
	{{ basePath }} {{ history }} {{ env }} {{ nonce }}
*/
package template
