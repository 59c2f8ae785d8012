package render

import (
	"html/template"
	"io"

	"bucketlens.dev/bucketlens/internal/scan"
	"bucketlens.dev/bucketlens/internal/utils"
)

type htmlPermission struct {
	Index      int
	Folder     string
	Permission string
	Class      string
}

type htmlFile struct {
	Key          string
	Size         string
	LastModified string
}

type htmlFolder struct {
	Name  string
	Files []htmlFile
}

type htmlReport struct {
	Bucket      string
	Region      string
	Timestamp   string
	TotalFiles  int
	TotalSize   string
	Permissions []htmlPermission
	Folders     []htmlFolder
}

// WriteHTML renders the static report document for r to w.
func WriteHTML(w io.Writer, r *scan.Report) error {
	data := htmlReport{
		Bucket:     r.Bucket,
		Region:     r.Region,
		Timestamp:  utils.TimeOrDash(r.GeneratedAt, utils.DateTimeSec) + " UTC",
		TotalFiles: r.Inventory.TotalCount,
		TotalSize:  utils.FormatBytes(r.Inventory.TotalSizeBytes),
	}

	for i, folder := range r.FolderNames() {
		perm := r.Permissions[folder]
		class := "no"
		if perm.CanRead || perm.CanWrite {
			class = "yes"
		}
		if perm.CanWrite {
			class = "writable"
		}
		data.Permissions = append(data.Permissions, htmlPermission{
			Index:      i + 1,
			Folder:     folder,
			Permission: permissionLabel(perm),
			Class:      class,
		})

		section := htmlFolder{Name: folder}
		for _, obj := range sortBySizeDesc(r.Folders[folder]) {
			section.Files = append(section.Files, htmlFile{
				Key:          obj.Key,
				Size:         utils.FormatBytes(obj.Size),
				LastModified: utils.TimeOrDash(obj.LastModified, utils.DateTime),
			})
		}
		data.Folders = append(data.Folders, section)
	}

	return reportTemplate.Execute(w, data)
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Bucket Report for {{.Bucket}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; background-color: #f8f9fa; }
        h1, h2 { color: #343a40; }
        .metadata, .permissions, .files {
            margin-bottom: 30px;
            padding: 15px;
            background-color: #fff;
            border: 1px solid #dee2e6;
            border-radius: 5px;
        }
        table { border-collapse: collapse; width: 100%; }
        th, td { border: 1px solid #dee2e6; padding: 8px; text-align: left; }
        th { background-color: #e9ecef; }
        .yes { color: green; font-weight: bold; }
        .no { color: #6c757d; font-weight: bold; }
        .writable { color: red; font-weight: bold; }
        .folder-title {
            background-color: #343a40;
            color: #fff;
            padding: 5px;
            border-radius: 3px;
            margin-top: 10px;
        }
    </style>
</head>
<body>
    <h1>Bucket Enumeration Report</h1>
    <div class="metadata">
        <h2>Bucket Metadata</h2>
        <p><strong>Bucket Name:</strong> {{.Bucket}}</p>
        <p><strong>Region:</strong> {{.Region}}</p>
        <p><strong>Timestamp:</strong> {{.Timestamp}}</p>
        <p><strong>Total Files:</strong> {{.TotalFiles}}</p>
        <p><strong>Total Size:</strong> {{.TotalSize}}</p>
    </div>
    <div class="permissions">
        <h2>Folder Permissions</h2>
        <table>
            <tr>
                <th>Sr. No.</th>
                <th>Folder</th>
                <th>Permission</th>
            </tr>
{{- range .Permissions}}
            <tr>
                <td>{{.Index}}</td>
                <td>{{.Folder}}</td>
                <td class="{{.Class}}">{{.Permission}}</td>
            </tr>
{{- end}}
        </table>
    </div>
    <div class="files">
        <h2>Bucket Files by Folder</h2>
{{- range .Folders}}
        <div class="folder-section">
            <div class="folder-title">{{.Name}}</div>
            <table>
                <tr>
                    <th>File</th>
                    <th>Size</th>
                    <th>Last Modified</th>
                </tr>
{{- range .Files}}
                <tr>
                    <td>{{.Key}}</td>
                    <td>{{.Size}}</td>
                    <td>{{.LastModified}}</td>
                </tr>
{{- end}}
            </table>
        </div>
{{- end}}
    </div>
</body>
</html>
`))
