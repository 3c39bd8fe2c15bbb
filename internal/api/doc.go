// @title           apiforge API
// @version         1.0
// @description     API project scaffold serving one endpoint registry as separate Main and Demo documents.
// @BasePath        /
package api
