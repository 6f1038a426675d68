package controllers

import "html/template"

var dashboardTemplate = template.Must(template.New("dashboard").Parse(dashboardTemplateHTML))

const dashboardTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Annotation Progress Dashboard</title>
<style>
:root {
  --bg: #fff; --fg: #1a1a2e; --card-bg: #f8f9fa; --border: #dee2e6;
  --table-alt: #f1f3f5; --muted: #6c757d; --accent: #4682b4;
  --annotated: #0d6efd; --pending: #fd7e14;
}
@media (prefers-color-scheme: dark) {
  :root {
    --bg: #1a1a2e; --fg: #e9ecef; --card-bg: #16213e; --border: #495057;
    --table-alt: #0f3460; --muted: #adb5bd; --accent: #5b9aff;
  }
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; padding: 1rem; max-width: 960px; margin: 0 auto; }
header { margin-bottom: 1.5rem; }
header h1 { font-size: 1.5rem; margin-bottom: .25rem; }
header p, section > p { color: var(--muted); font-size: .875rem; margin-bottom: 1rem; }
h2 { font-size: 1.125rem; margin-bottom: .25rem; }
section { margin-bottom: 2rem; }
.row { display: grid; grid-template-columns: repeat(auto-fit, minmax(260px, 1fr)); gap: 1rem; }
.card { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; }
.card h3 { font-size: .875rem; margin-bottom: .5rem; }
.kpi { text-align: center; }
.kpi .value { font-size: 4rem; font-weight: 700; color: var(--accent); }
.kpi .label { font-size: .75rem; color: var(--muted); text-transform: uppercase; }
table { width: 100%; border-collapse: collapse; font-size: .875rem; }
th, td { padding: .5rem .625rem; text-align: left; border-bottom: 1px solid var(--border); }
tr:nth-child(even) { background: var(--table-alt); }
td.count { text-align: right; }
footer { color: var(--muted); font-size: .75rem; }
</style>
</head>
<body>
<header>
  <h1>&#128483; Annotation Progress Dashboard</h1>
  <p>Live progress of the community annotation effort: how many records have been
  submitted, who is contributing, and who leads the pack.</p>
</header>

<section>
  <h2>&#128640; Contributors Progress</h2>
  <p>How many records have been annotated, how many are still pending?</p>
  <div class="row">
    <div class="card"><h3>Annotated vs Pending</h3><div id="chart-progress"></div></div>
    <div class="card kpi">
      <h3>Number of Annotators</h3>
      <div class="value">{{.Data.TotalAnnotators}}</div>
      <div class="label">distinct contributors</div>
    </div>
  </div>
</section>

<section>
  <h2>&#128126; Contributors Hall of Fame</h2>
  <p>The top {{len .Data.Leaderboard}} users with the most submitted responses.</p>
  <div class="card">
    <table>
      <thead><tr><th>Name</th><th class="count">Annotated Records</th></tr></thead>
      <tbody>
      {{range .Data.Leaderboard}}
        <tr><td>{{.Username}}</td><td class="count">{{.Annotated}}</td></tr>
      {{end}}
      </tbody>
    </table>
  </div>
</section>

<footer>Generated {{.Data.GeneratedAt.Format "2006-01-02 15:04:05 MST"}} &middot; target {{.Data.Progress.Target}} records</footer>

<script>
var chartData = {{.ChartJSON}};

function svgEl(tag, attrs) {
  var el = document.createElementNS("http://www.w3.org/2000/svg", tag);
  for (var k in attrs) el.setAttribute(k, attrs[k]);
  return el;
}

function renderDonut(id, labels, values, colors) {
  var c = document.getElementById(id); if (!c) return;
  var total = values.reduce(function(a,b){return a+b},0);
  if (!total) return;
  var svg = svgEl("svg", {width:"100%", viewBox:"0 0 300 160"});
  var cx=80, cy=80, r=60, angle=-Math.PI/2;
  for (var i = 0; i < values.length; i++) {
    if (values[i] === 0) continue;
    var slice = (values[i]/total)*Math.PI*2;
    if (values[i] === total) {
      svg.appendChild(svgEl("circle", {cx:cx, cy:cy, r:r, fill:colors[i%colors.length]}));
      angle += slice;
      continue;
    }
    var x1=cx+r*Math.cos(angle), y1=cy+r*Math.sin(angle);
    angle += slice;
    var x2=cx+r*Math.cos(angle), y2=cy+r*Math.sin(angle);
    var large = slice > Math.PI ? 1 : 0;
    var d = "M"+cx+","+cy+" L"+x1+","+y1+" A"+r+","+r+" 0 "+large+",1 "+x2+","+y2+" Z";
    svg.appendChild(svgEl("path", {d:d, fill:colors[i%colors.length], stroke:"var(--bg)"}));
  }
  svg.appendChild(svgEl("circle", {cx:cx, cy:cy, r:30, fill:"var(--card-bg)"}));
  for (var j = 0; j < labels.length; j++) {
    var ly = 56 + j*20;
    svg.appendChild(svgEl("rect", {x:175, y:ly-9, width:10, height:10, fill:colors[j%colors.length], rx:2}));
    var lt = svgEl("text", {x:190, y:ly, fill:"currentColor", "font-size":"12"});
    lt.textContent = labels[j]+" ("+values[j]+")";
    svg.appendChild(lt);
  }
  c.appendChild(svg);
}

renderDonut("chart-progress", chartData.labels, chartData.values, ["var(--annotated)", "var(--pending)"]);
</script>
</body>
</html>
`
