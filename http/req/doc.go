/*
Package req provides ergonomics for handling an HTTP request.

Package req decodes query parameters into a pointer to a struct.
That struct ought to leverage the appropriate struct tags for performing two tasks.
First, matching keys in the query to fields on the struct ("schema").
Second, for validating the query's data meets requirements ("validate").

Issues with either are translated to mediaspa sentinel errors
in order to provide a consistent interface for handlers.
*/
package req
