// Package bootstrap emits the pre-hydration script that themes the document
// before the interactive runtime attaches. The script re-derives mode and
// preset state from the same persisted slots and inlines the normalization
// and application algorithm, so its effect is indistinguishable from what the
// provider produces for identical inputs.
package bootstrap

import (
	"bytes"
	"encoding/json"
	"text/template"

	"github.com/alexisbeaulieu97/presetly/internal/mode"
	"github.com/alexisbeaulieu97/presetly/internal/preset"
)

// Options parameterizes the generated script. Keys and defaults must match
// the provider configuration or bootstrap and runtime will diverge.
type Options struct {
	ModeKey       string
	PresetKey     string
	DefaultMode   mode.Mode
	DefaultPreset *preset.Preset
}

// Script renders the self-contained bootstrap script body. The output is
// byte-stable for identical inputs. All property vocabulary and defaults are
// serialized from the same Go constants the applicator uses; nothing is
// hand-duplicated.
func Script(opts Options) (string, error) {
	if opts.ModeKey == "" {
		opts.ModeKey = "theme-engine-theme"
	}
	if opts.PresetKey == "" {
		opts.PresetKey = "theme-preset"
	}
	if opts.DefaultMode == "" {
		opts.DefaultMode = mode.System
	}

	colorSet := make(map[string]bool, len(preset.ColorProperties)+1)
	for _, name := range preset.ColorProperties {
		colorSet[name] = true
	}
	colorSet["shadow-color"] = true

	var defaultState any
	if opts.DefaultPreset != nil {
		defaultState = map[string]any{
			"presetId":   opts.DefaultPreset.ID,
			"presetName": opts.DefaultPreset.Label,
			"colors": map[string]preset.PropertyMap{
				"light": opts.DefaultPreset.Styles.Light,
				"dark":  opts.DefaultPreset.Styles.Dark,
			},
		}
	}

	data := map[string]string{}
	for key, value := range map[string]any{
		"ModeKey":       opts.ModeKey,
		"PresetKey":     opts.PresetKey,
		"DefaultMode":   string(opts.DefaultMode),
		"DefaultState":  defaultState,
		"AllProperties": preset.AllProperties(),
		"ColorSet":      colorSet,
		"Defaults":      preset.DefaultValues,
		"Fonts":         preset.FontProperties,
	} {
		encoded, err := json.Marshal(value)
		if err != nil {
			return "", err
		}
		data[key] = string(encoded)
	}

	var buf bytes.Buffer
	if err := scriptTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var scriptTemplate = template.Must(template.New("bootstrap").Parse(`(function(){
  try {
    var root=document.documentElement;
    var modeKey={{.ModeKey}};
    var presetKey={{.PresetKey}};
    var mode={{.DefaultMode}};
    try {
      var stored=localStorage.getItem(modeKey);
      if(stored==='light'||stored==='dark'||stored==='system'){mode=stored;}
    } catch(_){}
    var resolved=mode==='system'
      ?(window.matchMedia('(prefers-color-scheme: dark)').matches?'dark':'light')
      :mode;
    root.classList.remove('light','dark');
    root.classList.add(resolved);
    root.style.colorScheme=resolved;

    var state=null;
    try {
      var raw=localStorage.getItem(presetKey);
      if(raw){
        var parsed=JSON.parse(raw);
        if(parsed&&parsed.colors&&parsed.colors.light&&parsed.colors.dark){state=parsed;}
      }
    } catch(_){}
    if(!state){state={{.DefaultState}};}
    if(!state){return;}

    function clampNum(v,lo,hi){return Math.min(hi,Math.max(lo,v));}
    function fmt(h,s,l){return Math.round(h)+' '+Math.round(s)+'% '+Math.round(l)+'%';}
    function rgbToHsl(r,g,b){
      r/=255;g/=255;b/=255;
      var max=Math.max(r,g,b),min=Math.min(r,g,b);
      var l=(max+min)/2,h=0,s=0;
      if(max!==min){
        var d=max-min;
        s=l<0.5?d/(max+min):d/(2-max-min);
        if(max===r){h=(g-b)/d+(g<b?6:0);}
        else if(max===g){h=(b-r)/d+2;}
        else {h=(r-g)/d+4;}
        h*=60;
      }
      return fmt(h,s*100,l*100);
    }
    function normalize(value){
      if(!value){return value;}
      var v=String(value).trim();
      if(/^\d+(\.\d+)?\s+\d+(\.\d+)?%\s+\d+(\.\d+)?%$/.test(v)){return value;}
      var m=v.match(/^hsla?\(([^)]+)\)$/i);
      if(m){
        var n=m[1].match(/-?\d+(\.\d+)?/g);
        if(n&&n.length>=3){
          return fmt(clampNum(parseFloat(n[0]),0,360),clampNum(parseFloat(n[1]),0,100),clampNum(parseFloat(n[2]),0,100));
        }
        return value;
      }
      m=v.match(/^rgba?\(([^)]+)\)$/i);
      if(m){
        var c=m[1].match(/-?\d+(\.\d+)?/g);
        if(c&&c.length>=3){
          return rgbToHsl(clampNum(parseFloat(c[0]),0,255),clampNum(parseFloat(c[1]),0,255),clampNum(parseFloat(c[2]),0,255));
        }
        return value;
      }
      if(v.charAt(0)==='#'){
        var hex=v.slice(1);
        if(hex.length===3){hex=hex.charAt(0)+hex.charAt(0)+hex.charAt(1)+hex.charAt(1)+hex.charAt(2)+hex.charAt(2);}
        if(hex.length===8){hex=hex.slice(0,6);}
        if(hex.length===6&&/^[0-9a-fA-F]{6}$/.test(hex)){
          return rgbToHsl(parseInt(hex.slice(0,2),16),parseInt(hex.slice(2,4),16),parseInt(hex.slice(4,6),16));
        }
        return value;
      }
      if(v.indexOf('var(')===0){return value;}
      try {
        var probe=document.createElement('span');
        probe.style.color=v;
        document.head.appendChild(probe);
        var computed=getComputedStyle(probe).color;
        document.head.removeChild(probe);
        var p=computed.match(/\d+(\.\d+)?/g);
        if(p&&p.length>=3){return rgbToHsl(parseFloat(p[0]),parseFloat(p[1]),parseFloat(p[2]));}
      } catch(_){}
      return value;
    }

    var isDark=root.classList.contains('dark');
    var target=isDark?state.colors.dark:state.colors.light;
    var other=isDark?state.colors.light:state.colors.dark;
    var all={{.AllProperties}};
    var colorSet={{.ColorSet}};
    var defaults={{.Defaults}};
    var fonts={{.Fonts}};

    var working={};
    for(var k in target){
      if(Object.prototype.hasOwnProperty.call(target,k)){working[k]=target[k];}
    }
    for(var i=0;i<fonts.length;i++){
      var f=fonts[i];
      if(!working[f]&&other&&other[f]){working[f]=other[f];}
    }
    for(var j=0;j<all.length;j++){
      var name=all[j];
      root.style.removeProperty('--'+name);
      var val=working[name];
      if(val===undefined||val===''){val=defaults[name];}
      if(val===undefined){continue;}
      if(colorSet[name]){val=normalize(val);}
      root.style.setProperty('--'+name,val);
    }
  } catch(_){}
})();`))
