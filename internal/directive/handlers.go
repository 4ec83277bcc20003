package directive

import (
	"strings"

	"github.com/SamuelMarks/cdd-c-sub007/internal/model"
)

type handlerFunc func(doc *model.DocMetadata, rest string)

var handlers = map[string]handlerFunc{
	"route":             handleRoute,
	"webhook":           handleWebhook,
	"param":             handleParam,
	"return":            handleReturn,
	"returns":           handleReturn,
	"responseHeader":    handleResponseHeader,
	"link":              handleLink,
	"security":          handleSecurity,
	"securityScheme":    handleSecurityScheme,
	"server":            handleServer,
	"serverVar":         handleServerVar,
	"requestBody":       handleRequestBody,
	"encoding":          handleEncoding,
	"prefixEncoding":    handlePrefixEncoding,
	"itemEncoding":      handleItemEncoding,
	"externalDocs":      handleExternalDocs,
	"contact":           handleContact,
	"license":           handleLicense,
	"tag":               handleTag,
	"tags":              handleTag,
	"tagMeta":           handleTagMeta,
	"deprecated":        handleDeprecated,
	"summary":           handleSummary,
	"brief":             handleSummary,
	"operationId":       handleOperationID,
	"description":       handleDescription,
	"details":           handleDescription,
	"jsonSchemaDialect": handleJSONSchemaDialect,
	"infoTitle":         handleInfoTitle,
	"infoVersion":       handleInfoVersion,
	"infoSummary":       handleInfoSummary,
	"infoDescription":   handleInfoDescription,
	"termsOfService":    handleTermsOfService,
}

// handleRoute and handleWebhook apply the heuristic of spec §4.4: a
// leading-`/` first word is the path (method defaults to GET); otherwise
// the first word is a verb and the second is the path.
func handleRoute(doc *model.DocMetadata, rest string) {
	method, route := parseRouteLine(rest)
	doc.Method = method
	doc.Route = route
	doc.IsWebhook = false
}

func handleWebhook(doc *model.DocMetadata, rest string) {
	method, route := parseRouteLine(rest)
	doc.Method = method
	doc.Route = route
	doc.IsWebhook = true
}

func parseRouteLine(rest string) (method, route string) {
	first, remainder := splitFirstWord(rest)
	if strings.HasPrefix(first, "/") {
		return "GET", first
	}
	second, _ := splitFirstWord(remainder)

	return strings.ToUpper(first), second
}

func handleParam(doc *model.DocMetadata, rest string) {
	name, remainder := splitFirstWord(rest)
	if name == "" {
		return
	}
	opts, desc := parseAttrs(remainder)

	p := model.ParamDoc{Name: name, Description: desc}
	p.In = opts["in"]
	p.Required = parseBool(opts["required"])
	p.ContentType = opts["contentType"]
	p.Format = opts["format"]
	p.Style = opts["style"]
	p.Explode = parseBool(opts["explode"])
	p.AllowReserved = parseBool(opts["allowReserved"])
	p.AllowEmptyValue = parseBool(opts["allowEmptyValue"])
	p.ItemSchema = opts["itemSchema"]
	p.Deprecated = parseBool(opts["deprecated"])
	p.Example = opts["example"]

	doc.Params = append(doc.Params, p)
}

func handleReturn(doc *model.DocMetadata, rest string) {
	code, remainder := splitFirstWord(rest)
	if code == "" {
		return
	}
	opts, desc := parseAttrs(remainder)

	r := model.ReturnDoc{StatusCode: code, Description: desc}
	r.ContentType = opts["contentType"]
	r.Summary = opts["summary"]
	r.ItemSchema = opts["itemSchema"]
	r.Example = opts["example"]

	doc.Returns = append(doc.Returns, r)
}

func handleResponseHeader(doc *model.DocMetadata, rest string) {
	code, remainder := splitFirstWord(rest)
	name, remainder2 := splitFirstWord(remainder)
	if code == "" || name == "" {
		return
	}

	doc.ResponseHeaders = append(doc.ResponseHeaders, model.ResponseHeaderDoc{
		StatusCode:  code,
		Name:        name,
		Description: remainder2,
	})
}

func handleLink(doc *model.DocMetadata, rest string) {
	name, remainder := splitFirstWord(rest)
	opID, desc := splitFirstWord(remainder)
	if name == "" {
		return
	}

	doc.Links = append(doc.Links, model.LinkDoc{Name: name, OperationID: opID, Description: desc})
}

func handleSecurity(doc *model.DocMetadata, rest string) {
	name, remainder := splitFirstWord(rest)
	if name == "" {
		return
	}

	doc.Security = append(doc.Security, model.SecurityReqDoc{Name: name, Scopes: splitScopes(remainder)})
}

// handleSecurityScheme recognizes `flow:<type>` clauses followed by
// flow-specific attributes, validating each flow type per spec §4.4.
func handleSecurityScheme(doc *model.DocMetadata, rest string) {
	name, remainder := splitFirstWord(rest)
	if name == "" {
		return
	}
	opts, _ := parseAttrs(remainder)

	ss := model.SecuritySchemeDoc{Name: name}
	ss.Type = opts["type"]
	ss.Scheme = opts["scheme"]
	ss.BearerFormat = opts["bearerFormat"]
	ss.In = opts["in"]
	ss.ParamName = opts["name"]
	ss.OpenIDConnectURL = opts["openIdConnectUrl"]

	if flow, ok := opts["flow"]; ok {
		f := model.OAuthFlowDoc{
			Flow:                   flow,
			AuthorizationURL:       opts["authorizationUrl"],
			TokenURL:               opts["tokenUrl"],
			RefreshURL:             opts["refreshUrl"],
			DeviceAuthorizationURL: opts["deviceAuthorizationUrl"],
		}
		if scopes, ok := opts["scopes"]; ok {
			f.Scopes = make(map[string]string)
			for _, s := range splitScopes(scopes) {
				f.Scopes[s] = ""
			}
		}
		if validFlow(f) {
			ss.Flows = append(ss.Flows, f)
		}
	}

	doc.SecuritySchemes = append(doc.SecuritySchemes, ss)
}

// validFlow enforces each OAuth flow type's required attributes, per
// spec §4.4's closing paragraph.
func validFlow(f model.OAuthFlowDoc) bool {
	switch f.Flow {
	case "implicit":
		return f.AuthorizationURL != ""
	case "password", "clientCredentials":
		return f.TokenURL != ""
	case "authorizationCode":
		return f.AuthorizationURL != "" && f.TokenURL != ""
	case "deviceAuthorization":
		return f.DeviceAuthorizationURL != "" && f.TokenURL != ""
	default:
		return false
	}
}

func handleServer(doc *model.DocMetadata, rest string) {
	url, desc := splitFirstWord(rest)
	if url == "" {
		return
	}

	doc.Servers = append(doc.Servers, model.ServerDoc{URL: url, Description: desc})
}

// handleServerVar attaches to the most recently seen @server, per the
// natural doc-comment ordering (@server precedes its @serverVar lines).
func handleServerVar(doc *model.DocMetadata, rest string) {
	if len(doc.Servers) == 0 {
		return
	}
	name, remainder := splitFirstWord(rest)
	if name == "" {
		return
	}
	opts, desc := parseAttrs(remainder)

	v := model.ServerVarDoc{Name: name, Description: desc}
	v.Default = opts["default"]
	if enum, ok := opts["enum"]; ok {
		v.Enum = splitScopes(enum)
	}

	last := len(doc.Servers) - 1
	doc.Servers[last].Variables = append(doc.Servers[last].Variables, v)
}

func handleRequestBody(doc *model.DocMetadata, rest string) {
	ct, remainder := splitFirstWord(rest)
	opts, desc := parseAttrs(remainder)

	doc.RequestBody = &model.RequestBodyDoc{
		ContentType: ct,
		Schema:      opts["schema"],
		Required:    parseBool(opts["required"]),
		Description: desc,
	}
}

func handleEncoding(doc *model.DocMetadata, rest string)       { addEncoding(doc, rest, "encoding") }
func handlePrefixEncoding(doc *model.DocMetadata, rest string) { addEncoding(doc, rest, "prefixEncoding") }
func handleItemEncoding(doc *model.DocMetadata, rest string)   { addEncoding(doc, rest, "itemEncoding") }

func addEncoding(doc *model.DocMetadata, rest string, kind string) {
	propertyName, remainder := splitFirstWord(rest)
	contentType, _ := splitFirstWord(remainder)

	doc.Encodings = append(doc.Encodings, model.EncodingDoc{
		PropertyName: propertyName,
		ContentType:  contentType,
		Kind:         kind,
	})
}

func handleExternalDocs(doc *model.DocMetadata, rest string) {
	url, desc := splitFirstWord(rest)
	if url == "" {
		return
	}
	doc.ExternalDocs = &model.ExternalDocs{URL: url, Description: desc}
}

func handleContact(doc *model.DocMetadata, rest string) {
	opts, desc := parseAttrs(rest)
	doc.Contact = &model.Contact{
		Name:  firstNonEmpty(opts["name"], desc),
		URL:   opts["url"],
		Email: opts["email"],
	}
}

func handleLicense(doc *model.DocMetadata, rest string) {
	opts, desc := parseAttrs(rest)
	doc.License = &model.License{
		Name:       firstNonEmpty(opts["name"], desc),
		Identifier: opts["identifier"],
		URL:        opts["url"],
	}
}

func handleTag(doc *model.DocMetadata, rest string) {
	for _, t := range strings.Fields(rest) {
		t = strings.Trim(t, ",")
		if t != "" {
			doc.Tags = append(doc.Tags, t)
		}
	}
}

func handleTagMeta(doc *model.DocMetadata, rest string) {
	name, remainder := splitFirstWord(rest)
	if name == "" {
		return
	}
	opts, desc := parseAttrs(remainder)

	m := model.TagMeta{
		Name:        name,
		Summary:     firstNonEmpty(opts["summary"], desc),
		Description: opts["description"],
		Parent:      opts["parent"],
		Kind:        opts["kind"],
	}
	if url, ok := opts["externalDocs"]; ok {
		m.ExternalDocs = &model.ExternalDocs{URL: url}
	}

	doc.TagMeta = append(doc.TagMeta, m)
}

func handleDeprecated(doc *model.DocMetadata, rest string) {
	doc.Deprecated = true
}

func handleSummary(doc *model.DocMetadata, rest string) {
	doc.Summary = rest
}

func handleOperationID(doc *model.DocMetadata, rest string) {
	id, _ := splitFirstWord(rest)
	doc.OperationID = id
}

func handleDescription(doc *model.DocMetadata, rest string) {
	if doc.Description == "" {
		doc.Description = rest

		return
	}
	doc.Description += "\n" + rest
}

func handleJSONSchemaDialect(doc *model.DocMetadata, rest string) {
	uri, _ := splitFirstWord(rest)
	doc.JSONSchemaDialect = uri
}

func handleInfoTitle(doc *model.DocMetadata, rest string) {
	doc.Info.Title = rest
}

func handleInfoVersion(doc *model.DocMetadata, rest string) {
	v, _ := splitFirstWord(rest)
	doc.Info.Version = v
}

func handleInfoSummary(doc *model.DocMetadata, rest string) {
	doc.Info.Summary = rest
}

func handleInfoDescription(doc *model.DocMetadata, rest string) {
	doc.Info.Description = rest
}

func handleTermsOfService(doc *model.DocMetadata, rest string) {
	url, _ := splitFirstWord(rest)
	doc.Info.TermsOfService = url
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}

	return ""
}
